// Package view projects programs into display-ready view models. Nothing in
// here touches a terminal; renderers in ui and htmlview consume these types.
package view

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/five82/gallery/internal/catalog"
)

// ActionKind names an action control on a card.
type ActionKind string

const (
	ActionOpen ActionKind = "open"
	ActionSave ActionKind = "download"
)

// Placeholder text shown when no card matches.
const (
	EmptyTitle = "No results"
	EmptyHint  = "Try a different search term."
)

// Action is a clickable control tagged with the program it acts on.
type Action struct {
	Kind  ActionKind
	Label string
	ID    string
}

// Card is the list representation of one program.
type Card struct {
	ID          string
	Title       string
	Description string
	Lang        string
	Actions     []Action
}

// CardList is the full content of the card container.
type CardList struct {
	Cards []Card
	Empty bool
}

// Preview is the detail representation of one program.
type Preview struct {
	ID       string
	Title    string
	Lang     string
	Code     string
	FileName string
	Lines    int
	Size     string
}

// Toggle describes the theme toggle control.
type Toggle struct {
	Pressed bool
	Label   string
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Cards builds one card per program in input order.
func Cards(list []catalog.Program) CardList {
	if len(list) == 0 {
		return CardList{Empty: true}
	}
	cards := make([]Card, 0, len(list))
	for _, p := range list {
		cards = append(cards, ToCard(p))
	}
	return CardList{Cards: cards}
}

// ToCard projects a single program into a card.
func ToCard(p catalog.Program) Card {
	return Card{
		ID:          p.ID,
		Title:       Sanitize(p.Title),
		Description: Sanitize(p.Description),
		Lang:        Sanitize(p.Lang),
		Actions: []Action{
			{Kind: ActionOpen, Label: "Open", ID: p.ID},
			{Kind: ActionSave, Label: "Save", ID: p.ID},
		},
	}
}

// ToPreview projects a program into the preview pane. Code is kept
// literally; only the title shown in the frame is sanitized.
func ToPreview(p catalog.Program) Preview {
	lines := 0
	if p.Code != "" {
		lines = strings.Count(p.Code, "\n") + 1
	}
	return Preview{
		ID:       p.ID,
		Title:    Sanitize(p.Title),
		Lang:     Sanitize(p.Lang),
		Code:     p.Code,
		FileName: FileName(p.Title),
		Lines:    lines,
		Size:     humanize.Bytes(uint64(len(p.Code))),
	}
}

// FileName is the suggested download name for a program title: runs of
// whitespace become underscores and ".txt" is appended.
func FileName(title string) string {
	return whitespaceRun.ReplaceAllString(title, "_") + ".txt"
}

// Sanitize removes terminal escape sequences and control characters so
// catalog text cannot restyle or move the cursor when printed.
func Sanitize(s string) string {
	s = ansi.Strip(strings.ReplaceAll(s, "\t", " "))
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// ThemeToggle returns the toggle state for the active theme. The label
// offers the theme the toggle switches to.
func ThemeToggle(dark bool) Toggle {
	if dark {
		return Toggle{Pressed: true, Label: "☀ light"}
	}
	return Toggle{Pressed: false, Label: "☾ dark"}
}
