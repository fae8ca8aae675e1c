// Package catalog holds the fixed, in-memory list of code snippets shown by
// the gallery. A Catalog is built once at startup and never mutated.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyID is returned when a program has no identifier.
	ErrEmptyID = errors.New("program id is empty")
	// ErrEmptyTitle is returned when a program has no display title.
	ErrEmptyTitle = errors.New("program title is empty")
	// ErrDuplicateID is returned when two programs share an identifier.
	ErrDuplicateID = errors.New("duplicate program id")
)

// Program is one code-snippet record.
type Program struct {
	ID          string `toml:"id" yaml:"id"`
	Title       string `toml:"title" yaml:"title"`
	Description string `toml:"description" yaml:"description"`
	Lang        string `toml:"lang" yaml:"lang"`
	Code        string `toml:"code" yaml:"code"`
}

// Catalog is an ordered, read-only sequence of programs.
type Catalog struct {
	programs []Program
	byID     map[string]int
}

// New validates and normalizes programs into a Catalog. Text fields other
// than Code are trimmed; Code is kept literally.
func New(programs []Program) (*Catalog, error) {
	c := &Catalog{
		programs: make([]Program, 0, len(programs)),
		byID:     make(map[string]int, len(programs)),
	}
	for i, p := range programs {
		p = normalize(p)
		if p.ID == "" {
			return nil, fmt.Errorf("program %d: %w", i+1, ErrEmptyID)
		}
		if p.Title == "" {
			return nil, fmt.Errorf("program %q: %w", p.ID, ErrEmptyTitle)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("program %q: %w", p.ID, ErrDuplicateID)
		}
		c.byID[p.ID] = len(c.programs)
		c.programs = append(c.programs, p)
	}
	return c, nil
}

// Default returns the built-in sample catalog.
func Default() *Catalog {
	c, err := New(Samples())
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid samples: %v", err))
	}
	return c
}

// All returns a copy of the programs in catalog order.
func (c *Catalog) All() []Program {
	if c == nil {
		return []Program{}
	}
	out := make([]Program, len(c.programs))
	copy(out, c.programs)
	return out
}

// Lookup finds a program by id.
func (c *Catalog) Lookup(id string) (Program, bool) {
	if c == nil {
		return Program{}, false
	}
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Program{}, false
	}
	return c.programs[idx], true
}

// Len reports the number of programs.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.programs)
}

func normalize(p Program) Program {
	p.ID = strings.TrimSpace(p.ID)
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Lang = strings.TrimSpace(p.Lang)
	return p
}
