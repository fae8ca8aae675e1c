package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// file mirrors the on-disk catalog layout shared by TOML and YAML files.
//
//	[[program]]
//	id = "p1"
//	title = "Hello"
type file struct {
	Programs []Program `toml:"program" yaml:"programs"`
}

// Load reads a catalog file. The format is chosen by extension: .toml, or
// .yaml/.yml. Entries without an id are numbered p1, p2, ... by position.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	programs, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(programs)
}

// Parse decodes catalog bytes in the format named by ext.
func Parse(data []byte, ext string) ([]Program, error) {
	var raw file
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}

	for i := range raw.Programs {
		if strings.TrimSpace(raw.Programs[i].ID) == "" {
			raw.Programs[i].ID = fmt.Sprintf("p%d", i+1)
		}
	}
	return raw.Programs, nil
}
