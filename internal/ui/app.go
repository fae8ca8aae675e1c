package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/gallery/internal/gallery"
	"github.com/five82/gallery/internal/notify"
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Controller   *gallery.Controller
	ToastTimeout time.Duration
	CopyTimeout  time.Duration
	Logger       *zap.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	ctrl         *gallery.Controller
	log          *zap.Logger
	keys         keyMap
	toastTimeout time.Duration
	copyTimeout  time.Duration

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Card list
	selected int

	// Search
	search    textinput.Model
	searching bool

	// Preview
	preview viewport.Model

	// Overlays
	showHelp bool
	toast    notify.Toaster
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = gallery.New(gallery.Options{Logger: opts.Logger})
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	copyTimeout := opts.CopyTimeout
	if copyTimeout <= 0 {
		copyTimeout = DefaultCopyTimeout
	}

	return Model{
		ctx:          ctx,
		ctrl:         ctrl,
		log:          logger,
		keys:         DefaultKeyMap(),
		toastTimeout: opts.ToastTimeout,
		copyTimeout:  copyTimeout,
		theme:        ThemeFor(ctrl.State().Theme),
		search:       newSearchInput(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("gallery")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initPreviewViewport()
		}
		m.ready = true
		m.refreshPreview(false)
		return m, nil

	case noticeMsg:
		return m, m.showNotice(gallery.Notice(msg))

	case notify.HideMsg:
		m.toast = m.toast.Update(msg)
		return m, nil
	}

	// Cursor blink and friends.
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderToast())
	return b.String()
}

// renderContent lays out the card list and the preview pane. Wide terminals
// show both side by side; narrow ones show the preview in place of the list.
func (m Model) renderContent() string {
	height := m.contentHeight()
	listWidth, previewWidth := m.paneWidths()
	previewOpen := m.ctrl.State().PreviewOpen()

	if !previewOpen {
		return m.renderCards(m.width, height, true)
	}
	if !m.wideLayout() {
		return m.renderPreview(m.width, height)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderCards(listWidth, height, false),
		m.renderPreview(previewWidth, height))
}

func (m Model) contentHeight() int {
	return max(m.height-chromeHeight, 3)
}

func (m Model) wideLayout() bool {
	return m.width >= LayoutWideWidth
}

// paneWidths splits the width 40/60 in the wide layout.
func (m Model) paneWidths() (list, preview int) {
	if !m.wideLayout() {
		return m.width, m.width
	}
	list = max(m.width*40/100, LayoutMinListWidth)
	return list, m.width - list
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.theme = ThemeFor(m.ctrl.ToggleTheme())
		m.refreshPreview(false)
		return m, nil
	}

	if m.ctrl.State().PreviewOpen() {
		if handled, next, cmd := m.handlePreviewKey(msg); handled {
			return next, cmd
		}
		if !m.wideLayout() {
			return m, nil
		}
	}
	return m.handleListKey(msg)
}

// handlePreviewKey handles keys owned by the preview pane. It reports false
// for keys the card list should see.
func (m Model) handlePreviewKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.ctrl.Close()
		return true, m, nil

	case key.Matches(msg, m.keys.Copy):
		code, ok := m.ctrl.PreviewCode()
		if !ok {
			return true, m, nil
		}
		return true, m, m.copyCmd(code)

	case key.Matches(msg, m.keys.Download):
		notice, _ := m.ctrl.DownloadPreview()
		return true, m, m.showNotice(notice)

	case key.Matches(msg, m.keys.HalfPageDown):
		m.preview.HalfPageDown()
		return true, m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.preview.HalfPageUp()
		return true, m, nil
	}

	if m.wideLayout() {
		return false, m, nil
	}

	// The narrow preview covers the list, so navigation keys scroll the code.
	switch {
	case key.Matches(msg, m.keys.Down):
		m.preview.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.preview.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		m.preview.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.preview.GotoBottom()
	default:
		return false, m, nil
	}
	return true, m, nil
}

// handleListKey processes keyboard input for the card list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.startSearch()

	case key.Matches(msg, m.keys.ClearQuery):
		m.clearSearch()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.ctrl.State().LastQuery != "" {
			m.clearSearch()
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleLang):
		m.ctrl.CycleLanguage()
		m.clampSelection()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if id, ok := m.selectedID(); ok && m.ctrl.Open(id) {
			m.refreshPreview(true)
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		id, ok := m.selectedID()
		if !ok {
			return m, nil
		}
		notice, _ := m.ctrl.Download(id)
		return m, m.showNotice(notice)
	}

	count := len(m.ctrl.Visible())
	if count == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selected < count-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	}
	return m, nil
}

func (m Model) selectedID() (string, bool) {
	visible := m.ctrl.Visible()
	if m.selected < 0 || m.selected >= len(visible) {
		return "", false
	}
	return visible[m.selected].ID, true
}

// clampSelection keeps the selection inside the filtered list.
func (m *Model) clampSelection() {
	count := len(m.ctrl.Visible())
	switch {
	case count == 0:
		m.selected = 0
	case m.selected >= count:
		m.selected = count - 1
	}
}

// showNotice pops a toast for a non-empty notice.
func (m *Model) showNotice(n gallery.Notice) tea.Cmd {
	if n.Empty() {
		return nil
	}
	var cmd tea.Cmd
	m.toast, cmd = m.toast.Show(n.Message, n.Level, m.toastTimeout)
	return cmd
}

// Messages

type noticeMsg gallery.Notice

// Commands

// copyCmd writes text to the clipboard off the event loop.
func (m Model) copyCmd(text string) tea.Cmd {
	ctrl, parent, timeout := m.ctrl, m.ctx, m.copyTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		return noticeMsg(ctrl.Copy(ctx, text))
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
