// Package prompt resolves the project options from command-line flags and,
// where flags leave gaps, interactive questions.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	oerrors "github.com/opmodel/create-vue/internal/errors"
)

// Asker asks the user a single question.
type Asker interface {
	Input(title, def string) (string, error)
	Confirm(title string, def bool) (bool, error)
	Select(title string, options []string, def string) (string, error)
}

// HuhAsker asks questions with huh forms, one form per question.
type HuhAsker struct {
	// Accessible switches huh to its line-based accessible mode.
	Accessible bool
}

func (a *HuhAsker) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(huh.ThemeCharm()).
		WithAccessible(a.Accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return oerrors.Wrap(oerrors.ErrCancelled, "prompt aborted")
		}
		return fmt.Errorf("prompt error: %w", err)
	}
	return nil
}

// Input asks for a line of text. An empty answer selects def.
func (a *HuhAsker) Input(title, def string) (string, error) {
	var val string
	input := huh.NewInput().
		Title(title).
		Placeholder(def).
		Value(&val)
	if err := a.run(input); err != nil {
		return "", err
	}

	val = strings.TrimSpace(val)
	if val == "" {
		val = def
	}
	return val, nil
}

// Confirm asks a yes/no question.
func (a *HuhAsker) Confirm(title string, def bool) (bool, error) {
	val := def
	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&val)
	if err := a.run(confirm); err != nil {
		return false, err
	}
	return val, nil
}

// Select asks for one of options.
func (a *HuhAsker) Select(title string, options []string, def string) (string, error) {
	val := def
	sel := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(options...)...).
		Value(&val)
	if err := a.run(sel); err != nil {
		return "", err
	}
	return val, nil
}

// DefaultAsker answers every question with its default. It is used when
// stdin is not a terminal.
type DefaultAsker struct{}

func (DefaultAsker) Input(_, def string) (string, error)                     { return def, nil }
func (DefaultAsker) Confirm(_ string, def bool) (bool, error)                { return def, nil }
func (DefaultAsker) Select(_ string, _ []string, def string) (string, error) { return def, nil }
