// Package gallery wires user actions to the catalog, the filters and the UI
// state. It knows nothing about terminals; the ui package turns key presses
// into calls on Controller and renders what it exposes.
package gallery

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/gallery/internal/catalog"
	"github.com/five82/gallery/internal/filter"
	"github.com/five82/gallery/internal/notify"
	"github.com/five82/gallery/internal/state"
	"github.com/five82/gallery/internal/view"
)

// Toast messages emitted by controller actions.
const (
	MsgDownloaded = "Downloaded"
	MsgSaveFailed = "Save failed"
	MsgCopied     = "Code copied"
	MsgCopyFailed = "Copy failed"
)

// Notice is a message the caller should show as a toast. The zero Notice
// means nothing to show.
type Notice struct {
	Message string
	Level   notify.Level
	Path    string
}

// Empty reports whether there is nothing to show.
func (n Notice) Empty() bool { return n.Message == "" }

// Options configure a Controller. Nil collaborators get harmless defaults:
// an in-memory theme store, the system clipboard and a saver for the working
// directory.
type Options struct {
	Catalog   *catalog.Catalog
	Themes    ThemeStore
	Clipboard Clipboard
	Saver     Saver
	Logger    *zap.Logger
}

// Controller owns the UI state and applies user actions to it.
type Controller struct {
	catalog *catalog.Catalog
	state   *state.State
	themes  ThemeStore
	clip    Clipboard
	saver   Saver
	log     *zap.Logger

	languages []string
	visible   []catalog.Program
}

// New builds a Controller over the given catalog. The theme is read from the
// theme store once, here.
func New(opts Options) *Controller {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Themes == nil {
		opts.Themes = &memoryThemes{mode: state.ThemeLight}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard{}
	}
	if opts.Saver == nil {
		opts.Saver = DirSaver{Dir: "."}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	c := &Controller{
		catalog:   opts.Catalog,
		state:     state.New(opts.Themes.LoadTheme()),
		themes:    opts.Themes,
		clip:      opts.Clipboard,
		saver:     opts.Saver,
		log:       opts.Logger,
		languages: filter.UniqueLanguages(opts.Catalog.All()),
	}
	c.refilter()
	return c
}

// State exposes the UI state for rendering. Callers must not mutate it.
func (c *Controller) State() *state.State { return c.state }

// Catalog returns the catalog the controller serves.
func (c *Controller) Catalog() *catalog.Catalog { return c.catalog }

// Visible returns the programs that pass the current query and language.
func (c *Controller) Visible() []catalog.Program {
	out := make([]catalog.Program, len(c.visible))
	copy(out, c.visible)
	return out
}

// Cards projects the visible programs into cards.
func (c *Controller) Cards() view.CardList {
	return view.Cards(c.visible)
}

// Query applies a new search string over the full catalog.
func (c *Controller) Query(text string) {
	c.state.LastQuery = text
	c.refilter()
}

// Languages lists the selectable languages, without the "all" entry.
func (c *Controller) Languages() []string {
	out := make([]string, len(c.languages))
	copy(out, c.languages)
	return out
}

// Language returns the language selector, "all" when unset.
func (c *Controller) Language() string {
	if c.state.Lang == "" {
		return filter.AllLanguages
	}
	return c.state.Lang
}

// SetLanguage selects a language; "" or "all" clears the selector.
func (c *Controller) SetLanguage(lang string) {
	if lang == filter.AllLanguages {
		lang = ""
	}
	c.state.Lang = lang
	c.refilter()
}

// CycleLanguage steps the selector through all, then each language in order.
func (c *Controller) CycleLanguage() string {
	next := ""
	switch {
	case len(c.languages) == 0:
	case c.state.Lang == "":
		next = c.languages[0]
	default:
		for i, lang := range c.languages {
			if lang == c.state.Lang && i+1 < len(c.languages) {
				next = c.languages[i+1]
				break
			}
		}
	}
	c.SetLanguage(next)
	return c.Language()
}

// Open shows the program with id in the preview pane. Unknown ids are
// ignored and report false.
func (c *Controller) Open(id string) bool {
	p, ok := c.catalog.Lookup(id)
	if !ok {
		c.log.Debug("open ignored, unknown program", zap.String("id", id))
		return false
	}
	c.state.Open(p)
	c.log.Debug("preview opened", zap.String("id", p.ID))
	return true
}

// Close hides the preview pane.
func (c *Controller) Close() {
	c.state.Close()
}

// Preview returns the preview view model when the pane is open.
func (c *Controller) Preview() (view.Preview, bool) {
	p, ok := c.state.Previewed()
	if !ok {
		return view.Preview{}, false
	}
	return view.ToPreview(p), true
}

// PreviewCode returns the literal code shown in the preview pane.
func (c *Controller) PreviewCode() (string, bool) {
	p, ok := c.state.Previewed()
	if !ok {
		return "", false
	}
	return p.Code, true
}

// Download saves the program's code as <title>.txt. Unknown ids are ignored
// and yield an empty notice.
func (c *Controller) Download(id string) (Notice, error) {
	p, ok := c.catalog.Lookup(id)
	if !ok {
		c.log.Debug("download ignored, unknown program", zap.String("id", id))
		return Notice{}, nil
	}
	return c.save(p)
}

// DownloadPreview saves the program in the preview pane.
func (c *Controller) DownloadPreview() (Notice, error) {
	p, ok := c.state.Previewed()
	if !ok {
		return Notice{}, nil
	}
	return c.save(p)
}

func (c *Controller) save(p catalog.Program) (Notice, error) {
	name := view.FileName(p.Title)
	path, err := c.saver.Save(name, []byte(p.Code))
	if err != nil {
		c.log.Warn("save failed", zap.String("id", p.ID), zap.String("file", name), zap.Error(err))
		return Notice{Message: MsgSaveFailed, Level: notify.LevelError}, err
	}
	c.log.Info("program saved", zap.String("id", p.ID), zap.String("path", path))
	return Notice{Message: MsgDownloaded, Level: notify.LevelSuccess, Path: path}, nil
}

// ToggleTheme flips between light and dark and persists the result. A
// persistence failure is logged; the new theme still applies.
func (c *Controller) ToggleTheme() state.ThemeMode {
	c.state.Theme = c.state.Theme.Toggle()
	if err := c.themes.SaveTheme(c.state.Theme); err != nil {
		c.log.Warn("persist theme failed", zap.String("theme", string(c.state.Theme)), zap.Error(err))
	}
	return c.state.Theme
}

// ThemeToggle returns the theme toggle control for the active theme.
func (c *Controller) ThemeToggle() view.Toggle {
	return view.ThemeToggle(c.state.Theme.Dark())
}

// Copy places text on the clipboard. It only touches the clipboard and the
// logger, so it is safe to call from a tea.Cmd goroutine. It never panics
// past this boundary; failure becomes a "Copy failed" notice.
func (c *Controller) Copy(ctx context.Context, text string) Notice {
	errc := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				errc <- fmt.Errorf("clipboard panicked: %v", r)
			}
		}()
		errc <- c.clip.WriteAll(text)
	}()

	var err error
	select {
	case err = <-errc:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		c.log.Warn("copy failed", zap.Error(err))
		return Notice{Message: MsgCopyFailed, Level: notify.LevelError}
	}
	return Notice{Message: MsgCopied, Level: notify.LevelSuccess}
}

func (c *Controller) refilter() {
	c.visible = filter.Apply(c.catalog.All(), c.state.LastQuery, c.state.Lang)
}
