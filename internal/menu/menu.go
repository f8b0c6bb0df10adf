// Package menu defines numbered terminal menus and parses typed choices.
package menu

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	ChoiceEquipment = 1
	ChoiceCharacter = 2
	ChoiceExit      = 999
)

var (
	// ErrNotANumber is returned when the typed choice is not an integer.
	ErrNotANumber = errors.New("choice must be a number")
	// ErrUnknownChoice is returned when the typed number is not a menu option.
	ErrUnknownChoice = errors.New("choice is not on the menu")
)

// Menu is a titled set of numbered options.
type Menu struct {
	Title   string
	Options map[int]string
}

// New creates a menu. The options map is copied.
func New(title string, options map[int]string) (*Menu, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("menu title is empty")
	}
	if len(options) == 0 {
		return nil, errors.New("menu has no options")
	}
	copied := make(map[int]string, len(options))
	for k, v := range options {
		copied[k] = v
	}
	return &Menu{Title: title, Options: copied}, nil
}

// Main returns the Goblin King main menu.
func Main() *Menu {
	m, err := New("GOBLIN KING", map[int]string{
		ChoiceEquipment: "Randomize equipment",
		ChoiceCharacter: "Randomize a character",
		ChoiceExit:      "EXIT",
	})
	if err != nil {
		panic(err)
	}
	return m
}

// Keys returns the option numbers in ascending order.
func (m *Menu) Keys() []int {
	keys := make([]int, 0, len(m.Options))
	for k := range m.Options {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Lines returns one "<n>. <label>" line per option, in key order.
func (m *Menu) Lines() []string {
	keys := m.Keys()
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%d. %s", k, m.Options[k])
	}
	return lines
}

// Choose parses input as one of the menu's option numbers.
func (m *Menu) Choose(input string) (int, error) {
	input = strings.TrimSpace(input)
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", input, ErrNotANumber)
	}
	if _, ok := m.Options[n]; !ok {
		return 0, fmt.Errorf("%d: %w", n, ErrUnknownChoice)
	}
	return n, nil
}
