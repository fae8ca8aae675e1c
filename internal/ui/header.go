package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title bar: logo, query, language and the theme
// toggle on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("Gallery", styles.Logo)}

	if m.searching {
		parts = append(parts, m.search.View())
	} else if q := m.ctrl.State().LastQuery; q != "" {
		parts = append(parts,
			bg.Render("/", styles.AccentText)+bg.Render(truncate(q, 24), styles.Text))
	}

	parts = append(parts,
		bg.Render("lang", styles.MutedText)+bg.Sep(" ")+bg.Render(m.ctrl.Language(), styles.InfoText))

	total := m.ctrl.Catalog().Len()
	shown := len(m.ctrl.Visible())
	parts = append(parts, bg.Render(fmt.Sprintf("%d/%d", shown, total), styles.FaintText))

	left := strings.Join(parts, sep)

	toggle := m.ctrl.ThemeToggle()
	toggleStyle := styles.AccentText
	if toggle.Pressed {
		toggleStyle = styles.WarningText
	}
	right := bg.Render("T", styles.AccentText) + bg.Sep(":") + bg.Render(toggle.Label, toggleStyle)

	gap := max(m.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

// renderCommandBar renders the key hints for the focused area.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.searching:
		commands = []cmd{
			{"enter", "Done"},
			{"esc", "Done"},
		}
	case m.ctrl.State().PreviewOpen():
		commands = []cmd{
			{"c", "Copy"},
			{"d", "Download"},
			{"ctrl+d/u", "Scroll"},
			{"esc", "Close"},
			{"?", "More"},
		}
		if m.wideLayout() {
			commands = append([]cmd{{"j/k", "Navigate"}, {"enter", "Open"}}, commands...)
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"L", "Language"},
			{"j/k", "Navigate"},
			{"enter", "Open"},
			{"s", "Save"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderToast renders the notification line. It stays blank while no toast
// is visible so the layout does not jump.
func (m Model) renderToast() string {
	bg := NewBgStyle(m.theme.Background)
	if !m.toast.Visible() {
		return bg.FillLine("", m.width)
	}
	styles := m.theme.Styles()
	msg := bg.Render(truncate(m.toast.Message(), max(m.width-2, 0)), styles.ToastStyle(m.toast.Level()))
	return bg.FillLine(bg.Space()+msg, m.width)
}
