package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/gallery/internal/view"
)

// initPreviewViewport sizes the preview viewport for the current layout.
func (m *Model) initPreviewViewport() {
	w, h := m.previewInnerSize()
	m.preview = viewport.New(w, h)
	m.preview.Style = lipgloss.NewStyle()
}

// previewInnerSize returns the viewport size inside the preview box. One
// row below the code is kept for the file footer.
func (m Model) previewInnerSize() (int, int) {
	_, previewWidth := m.paneWidths()
	return max(previewWidth-4, 10), max(m.contentHeight()-3, 1)
}

// refreshPreview re-renders the open program into the viewport. It runs on
// open, on resize and on theme change; scrolling state resets only on open.
func (m *Model) refreshPreview(resetScroll bool) {
	p, ok := m.ctrl.Preview()
	if !ok {
		m.preview.SetContent("")
		return
	}
	w, h := m.previewInnerSize()
	m.preview.Width = w
	m.preview.Height = h
	m.preview.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))

	body, err := highlightCode(p.Code, p.Lang, m.theme.GlamourStyle, w)
	if err != nil {
		m.log.Debug("highlight failed, showing raw code", zap.String("id", p.ID), zap.Error(err))
		body = sanitizeCode(p.Code)
	}
	m.preview.SetContent(body)
	if resetScroll {
		m.preview.GotoTop()
	}
}

// renderPreview renders the preview pane: code viewport plus a footer with
// the download name, line count and size.
func (m Model) renderPreview(width, height int) string {
	p, ok := m.ctrl.Preview()
	if !ok {
		return ""
	}
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	footer := bg.Render(p.FileName, styles.AccentText) +
		bg.Render(" · ", styles.FaintText) +
		bg.Render(fmt.Sprintf("%d %s", p.Lines, pluralize(p.Lines, "line", "lines")), styles.MutedText) +
		bg.Render(" · ", styles.FaintText) +
		bg.Render(p.Size, styles.MutedText)
	if pct := m.preview.ScrollPercent(); m.preview.TotalLineCount() > m.preview.Height {
		footer += bg.Render(fmt.Sprintf("  %3.0f%%", pct*100), styles.FaintText)
	}

	content := m.preview.View() + "\n" + bg.Spaces(1) + footer
	return m.renderTitledBox(previewTitle(p), content, width, height, true)
}

func previewTitle(p view.Preview) string {
	if p.Lang == "" {
		return p.Title
	}
	return p.Title + " · " + p.Lang
}

// highlightCode renders code as a fenced markdown block so glamour applies
// syntax highlighting in the theme's standard style.
func highlightCode(code, lang, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(codeFence(sanitizeCode(code), lang))
	if err != nil {
		return "", fmt.Errorf("render code: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}

// codeFence wraps code in a fence longer than any backtick run inside it.
func codeFence(code, lang string) string {
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	return fence + fenceLang(lang) + "\n" + code + "\n" + fence + "\n"
}

// fenceLang maps a catalog language to a chroma lexer name.
func fenceLang(lang string) string {
	return strings.ToLower(strings.Join(strings.Fields(lang), ""))
}

// sanitizeCode strips escape sequences line by line and keeps indentation.
func sanitizeCode(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = view.Sanitize(strings.ReplaceAll(line, "\t", "    "))
	}
	return strings.Join(lines, "\n")
}
