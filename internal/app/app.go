package app

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/goblinking/internal/config"
	"github.com/samdwyer/goblinking/internal/menu"
	"github.com/samdwyer/goblinking/internal/rando"
	"github.com/samdwyer/goblinking/internal/registry"
	"github.com/samdwyer/goblinking/internal/telemetry"
	"github.com/samdwyer/goblinking/internal/ui"
)

const (
	prompt = "Enter a choice: "

	// maxInputLen bounds the typed choice; the longest option is 999.
	maxInputLen = 6

	characterNotDone = `The "randomize character" feature is not done.`
)

// App holds the menu loop state.
type App struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	menu     *menu.Menu
	registry *registry.Registry
	sampler  *rando.Sampler
	cfg      config.Config

	state   State
	input   string
	results []string
	message string
	running bool
	err     error
}

// New creates an app drawing to screen.
func New(screen *ui.Screen, reg *registry.Registry, sampler *rando.Sampler, cfg config.Config) *App {
	return &App{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		menu:     menu.Main(),
		registry: reg,
		sampler:  sampler,
		cfg:      cfg,
		state:    StateMenu,
		running:  true,
	}
}

// Run executes the menu loop until the user exits or a roll fails.
// A failed roll ends the loop and is returned.
func (a *App) Run(ctx context.Context) error {
	for a.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.renderer.Render(a.view())

		ev := a.screen.PollEvent()
		if ev == nil {
			// Screen was finalized.
			return a.err
		}
		a.handleEvent(ctx, ev)
	}
	return a.err
}

// Close cleans up app resources.
func (a *App) Close() {
	if a.screen != nil {
		a.screen.Close()
	}
}

func (a *App) view() ui.View {
	return ui.View{
		Title:   a.menu.Title,
		Options: a.menu.Lines(),
		Prompt:  prompt,
		Input:   a.input,
		Results: a.results,
		Message: a.message,
		IsError: a.state == StateNotice,
	}
}

// handleEvent processes a single input event.
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (a *App) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false

	case tcell.KeyEnter:
		a.submit(ctx)

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if a.input != "" {
			_, size := utf8.DecodeLastRuneInString(a.input)
			a.input = a.input[:len(a.input)-size]
		}

	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case (r == 'q' || r == 'Q') && a.input == "":
			a.running = false
		case utf8.RuneCountInString(a.input) < maxInputLen:
			a.input += string(r)
		}
	}
}

// submit dispatches the typed choice.
func (a *App) submit(ctx context.Context) {
	input := a.input
	a.input = ""

	choice, err := a.menu.Choose(input)
	if err != nil {
		a.notice("Invalid choice: " + err.Error())
		return
	}

	ctx, span := telemetry.Tracer("app").Start(ctx, "app.choice")
	span.SetAttributes(attribute.Int("menu.choice", choice))
	defer func() {
		span.SetAttributes(attribute.String("app.state", a.state.String()))
		span.End()
	}()

	switch choice {
	case menu.ChoiceEquipment:
		roll, err := RollEquipment(ctx, a.registry, a.sampler, a.cfg)
		if err != nil {
			span.RecordError(err)
			a.err = err
			a.running = false
			return
		}
		a.state = StateResults
		a.results = roll.Lines()
		a.message = ""
	case menu.ChoiceCharacter:
		a.notice(characterNotDone)
	case menu.ChoiceExit:
		a.running = false
	}
}

func (a *App) notice(msg string) {
	a.state = StateNotice
	a.results = nil
	a.message = strings.TrimSpace(msg)
}
