package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// FooterModel is the single status line at the bottom of the dashboard:
// a run state badge followed by the active key bindings.
type FooterModel struct {
	width  int
	paused bool
	done   bool
	isErr  bool
	keymap KeyMap
}

// NewFooterModel creates the footer.
func NewFooterModel() FooterModel {
	return FooterModel{keymap: DefaultKeyMap()}
}

// SetWidth updates the footer width.
func (f *FooterModel) SetWidth(w int) { f.width = w }

// SetPaused toggles the paused badge.
func (f *FooterModel) SetPaused(p bool) { f.paused = p }

// SetDone toggles the finished badge.
func (f *FooterModel) SetDone(d bool) { f.done = d }

// SetError marks the run as failed.
func (f *FooterModel) SetError(e bool) { f.isErr = e }

// View renders the footer line.
func (f FooterModel) View() string {
	status := f.statusBadge()

	hints := []key.Binding{f.keymap.Quit, f.keymap.Pause, f.keymap.Up, f.keymap.Down}
	parts := make([]string, 0, len(hints))
	for _, b := range hints {
		h := b.Help()
		parts = append(parts,
			footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	line := " " + status + "  " + strings.Join(parts, footerDescStyle.Render(" · "))

	if pad := f.width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

func (f FooterModel) statusBadge() string {
	switch {
	case f.isErr:
		return statusErrorStyle.Render("ERROR")
	case f.done:
		return statusDoneStyle.Render("DONE")
	case f.paused:
		return statusPausedStyle.Render("PAUSED")
	default:
		return statusRunningStyle.Render("RUNNING")
	}
}
