package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// View is everything the renderer draws for one frame.
type View struct {
	Title   string
	Options []string // Pre-formatted "<n>. <label>" lines
	Prompt  string
	Input   string   // Characters typed so far
	Results []string // Output of the last command
	Message string   // Status line below the results
	IsError bool     // Draw Message as an error
}

// Renderer handles drawing menus to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render clears the screen and draws v.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	_, height := r.screen.Size()

	titleStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.DrawText(0, 0, v.Title, titleStyle)
	r.screen.DrawText(0, 1, strings.Repeat("=", len(v.Title)), titleStyle)

	y := 3
	optionStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, line := range v.Options {
		r.screen.DrawText(2, y, line, optionStyle)
		y++
	}

	y++
	promptStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	x := r.screen.DrawText(0, y, v.Prompt, promptStyle)
	r.screen.DrawText(x, y, v.Input, optionStyle.Bold(true))
	y += 2

	resultStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, line := range v.Results {
		if y >= height-1 {
			break
		}
		r.screen.DrawText(2, y, line, resultStyle)
		y++
	}

	if v.Message != "" {
		r.RenderMessage(v.Message, height-1, v.IsError)
	}

	r.screen.Show()
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int, isError bool) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if isError {
		style = style.Foreground(tcell.ColorRed)
	}
	r.screen.DrawText(0, y, msg, style)
}
