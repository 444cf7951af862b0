package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EaheaMozumder/my-portfolio/internal/config"
	"github.com/EaheaMozumder/my-portfolio/internal/contact"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func newTestModel(t *testing.T, failureRate float64) model {
	t.Helper()
	cfg := config.Default()
	cfg.SoundCues = false
	cfg.ThemeFile = filepath.Join(t.TempDir(), "preferences")
	return newModel(context.Background(), cfg, contact.NewSubmitter(0, failureRate, fixedRand(0.5)))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m model, msgs ...tea.Msg) (model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(model)
	}
	return m, cmd
}

func fill(m model) model {
	m, _ = press(m,
		runes("Ada"), tea.KeyMsg{Type: tea.KeyTab},
		runes("ada@example.com"), tea.KeyMsg{Type: tea.KeyTab},
		runes("Hello"), tea.KeyMsg{Type: tea.KeySpace}, runes("there"),
	)
	return m
}

// TestModelTypingAndFocus verifies keys land in the focused field
func TestModelTypingAndFocus(t *testing.T) {
	m := fill(newTestModel(t, 0))
	if got := m.form.Get(contact.FieldName); got != "Ada" {
		t.Errorf("Expected name Ada, got %q", got)
	}
	if got := m.form.Get(contact.FieldMessage); got != "Hello there" {
		t.Errorf("Expected message 'Hello there', got %q", got)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.form.Get(contact.FieldMessage); got != "Hello ther" {
		t.Errorf("Expected backspace to trim, got %q", got)
	}
	if m.focus != 1 {
		t.Errorf("Expected focus 1 after shift+tab, got %d", m.focus)
	}
}

// TestModelInvalidSubmit verifies validation errors show without a command
func TestModelInvalidSubmit(t *testing.T) {
	m, cmd := press(newTestModel(t, 0), runes("A"), tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Expected no submission for an invalid form")
	}
	if m.status.Kind != contact.Invalid {
		t.Errorf("Expected Invalid status, got %v", m.status.Kind)
	}
	for _, f := range contact.Fields {
		if m.errs[f] == "" {
			t.Errorf("Expected an error for %s", f)
		}
	}
	if !strings.Contains(m.View(), "Please fix errors.") {
		t.Error("Expected status in view")
	}
}

// TestModelSubmitSuccess verifies a valid form is sent and then cleared
func TestModelSubmitSuccess(t *testing.T) {
	m, cmd := press(fill(newTestModel(t, 0)), tea.KeyMsg{Type: tea.KeyEnter})
	if m.status.Kind != contact.Pending {
		t.Fatalf("Expected Pending, got %v", m.status.Kind)
	}
	if cmd == nil {
		t.Fatal("Expected a submit command")
	}

	// a second enter while pending is ignored
	if _, again := press(m, tea.KeyMsg{Type: tea.KeyEnter}); again != nil {
		t.Error("Expected no second submission while pending")
	}

	m, _ = press(m, cmd())
	if m.status.Kind != contact.Sent {
		t.Errorf("Expected Sent, got %v", m.status.Kind)
	}
	if m.form != (contact.Form{}) {
		t.Errorf("Expected cleared form, got %+v", m.form)
	}
}

// TestModelSubmitFailure verifies a failed delivery keeps the form
func TestModelSubmitFailure(t *testing.T) {
	m, cmd := press(fill(newTestModel(t, 1)), tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(m, cmd())
	if m.status.Kind != contact.Failed {
		t.Errorf("Expected Failed, got %v", m.status.Kind)
	}
	if m.form.Get(contact.FieldName) != "Ada" {
		t.Error("Expected form kept after failure")
	}
}

// TestModelPaste verifies clipboard text is appended and flattened
func TestModelPaste(t *testing.T) {
	orig := readClipboard
	t.Cleanup(func() { readClipboard = orig })

	readClipboard = func() (string, error) { return "a@b.io\n", nil }
	m, _ := press(newTestModel(t, 0), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.form.Get(contact.FieldEmail); got != "a@b.io" {
		t.Errorf("Expected pasted email, got %q", got)
	}

	readClipboard = func() (string, error) { return "", errors.New("no xclip") }
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlV})
	if !strings.Contains(m.note, "no xclip") {
		t.Errorf("Expected clipboard note, got %q", m.note)
	}
}

func TestModelQuit(t *testing.T) {
	_, cmd := press(newTestModel(t, 0), tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}
