package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gallery/internal/view"
)

// renderCards renders the card list pane. The whole pane is rebuilt from the
// current filtered list on every frame.
func (m Model) renderCards(width, height int, focused bool) string {
	list := m.ctrl.Cards()
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}

	var content string
	if list.Empty {
		content = m.renderPlaceholder(width-2, height-2, bgColor)
	} else {
		content = m.renderCardRows(list.Cards, width-2, height-2, bgColor)
	}
	return m.renderTitledBox(m.cardsTitle(len(list.Cards)), content, width, height, focused)
}

func (m Model) cardsTitle(n int) string {
	title := fmt.Sprintf("Programs (%d %s)", n, pluralize(n, "match", "matches"))
	if lang := m.ctrl.Language(); lang != "all" {
		title += " · " + lang
	}
	return title
}

// renderPlaceholder renders the single "No results" card.
func (m Model) renderPlaceholder(width, height int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	body := styles.Text.Bold(true).Render(view.EmptyTitle) + "\n" +
		styles.MutedText.Render(view.EmptyHint)
	return lipgloss.Place(max(width, 0), max(height, 0), lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(bgColor)))
}

// renderCardRows renders the window of cards around the selection.
func (m Model) renderCardRows(cards []view.Card, width, height int, bgColor string) string {
	perPage := max(height/cardHeight, 1)
	offset := 0
	if m.selected >= perPage {
		offset = m.selected - perPage + 1
	}
	end := min(offset+perPage, len(cards))

	lines := make([]string, 0, (end-offset)*cardHeight)
	for i := offset; i < end; i++ {
		lines = append(lines, m.renderCard(cards[i], width, bgColor, i == m.selected)...)
	}
	return strings.Join(lines, "\n")
}

// renderCard renders one card as cardHeight lines:
//
//	▸ Title                      [Lang]
//	  description
//	  Open · Save
func (m Model) renderCard(card view.Card, width int, bgColor string, selected bool) []string {
	rowBg := bgColor
	styles := m.theme.Styles()
	titleStyle, descStyle, actionStyle := styles.Text.Bold(true), styles.MutedText, styles.FaintText
	marker := "  "
	if selected {
		rowBg = m.theme.SelectionBg
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		titleStyle, descStyle, actionStyle = sel.Bold(true), sel, sel
		marker = "▸ "
	}
	bg := NewBgStyle(rowBg)

	badge := ""
	if card.Lang != "" {
		badge = styles.LangBadge.Render(card.Lang)
	}
	titleWidth := max(width-lipgloss.Width(badge)-len(marker)-1, 4)
	title := padRight(truncate(card.Title, titleWidth), titleWidth)
	line1 := bg.Render(marker, titleStyle) + bg.Render(title, titleStyle) + bg.Space() + badge

	desc := card.Description
	if desc == "" {
		desc = "No description"
	}
	line2 := bg.Spaces(2) + bg.Render(truncate(desc, width-2), descStyle)

	labels := make([]string, 0, len(card.Actions))
	for _, a := range card.Actions {
		labels = append(labels, a.Label)
	}
	line3 := bg.Spaces(2) + bg.Render(strings.Join(labels, " · "), actionStyle)

	return []string{
		bg.FillLine(line1, width),
		bg.FillLine(line2, width),
		bg.FillLine(line3, width),
	}
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	rows := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows,
			bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(rows, "\n") + "\n" + bottomBorder
}
