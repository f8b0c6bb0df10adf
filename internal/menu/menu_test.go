package menu

import (
	"errors"
	"slices"
	"testing"
)

func TestMainMenu(t *testing.T) {
	m := Main()

	if m.Title != "GOBLIN KING" {
		t.Errorf("Title = %q, want %q", m.Title, "GOBLIN KING")
	}

	want := []string{"1. Randomize equipment", "2. Randomize a character", "999. EXIT"}
	if got := m.Lines(); !slices.Equal(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
}

func TestNew(t *testing.T) {
	if _, err := New("", map[int]string{1: "a"}); err == nil {
		t.Error("New with empty title should fail")
	}
	if _, err := New("T", nil); err == nil {
		t.Error("New with no options should fail")
	}

	opts := map[int]string{3: "c", 1: "a"}
	m, err := New("T", opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	opts[2] = "b"
	if got := m.Keys(); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("Keys() = %v, want [1 3]", got)
	}
}

func TestChoose(t *testing.T) {
	m := Main()

	tests := []struct {
		input   string
		want    int
		wantErr error
	}{
		{"1", ChoiceEquipment, nil},
		{" 2 ", ChoiceCharacter, nil},
		{"999", ChoiceExit, nil},
		{"3", 0, ErrUnknownChoice},
		{"", 0, ErrNotANumber},
		{"one", 0, ErrNotANumber},
		{"1.5", 0, ErrNotANumber},
	}

	for _, tt := range tests {
		got, err := m.Choose(tt.input)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Choose(%q) error = %v, want %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("Choose(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
