// Package picker provides the interactive entry selection surfaces: a
// filtering terminal select, a multi-select for removals, and an external
// stdin/stdout chooser for GUI launchers.
package picker

import (
	"errors"

	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/hopper/internal/entry"
)

// ErrAborted is returned when the user cancels a selection. It is not a
// failure; commands translate it to a silent non-zero exit.
var ErrAborted = errors.New("selection aborted")

// pickerTheme adapts the base huh theme to hopper's accent color.
func pickerTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color("212")
		t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
		t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
		t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accent)
		t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(accent)
		return t
	})
}

// options maps entries to display-string options. Display strings are
// unique per (path, layout) pair, so the selected value round-trips to an
// index unambiguously.
func options(entries []entry.Entry) ([]huh.Option[int], map[string]int) {
	opts := make([]huh.Option[int], len(entries))
	byDisplay := make(map[string]int, len(entries))
	for i, e := range entries {
		opts[i] = huh.NewOption(e.String(), i)
		byDisplay[e.String()] = i
	}
	return opts, byDisplay
}

// Pick presents a filtering select over the entries and returns the chosen
// one. Cancelling returns ErrAborted.
func Pick(title string, entries []entry.Entry) (entry.Entry, error) {
	opts, _ := options(entries)

	var selected int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(title).
			Options(opts...).
			Filtering(true).
			Value(&selected),
	)).WithTheme(pickerTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return entry.Entry{}, ErrAborted
		}
		return entry.Entry{}, err
	}
	return entries[selected], nil
}

// PickMany presents a multi-select over the entries and returns the chosen
// indices into the input slice. Cancelling returns ErrAborted.
func PickMany(title string, entries []entry.Entry) ([]int, error) {
	opts, _ := options(entries)

	var selected []int
	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[int]().
			Title(title).
			Options(opts...).
			Value(&selected),
	)).WithTheme(pickerTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}
		return nil, err
	}
	return selected, nil
}
