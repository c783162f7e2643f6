package templates

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"resume-builder/internal/latex"
)

//go:embed catalog/catalog.yaml catalog/*.tex
var catalogFS embed.FS

type catalogFile struct {
	Templates []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		ImageURL    string `yaml:"imageUrl"`
		File        string `yaml:"file"`
	} `yaml:"templates"`
}

// Catalog is the immutable, ordered set of templates.
type Catalog struct {
	ordered []Template
	byID    map[string]Template
}

// LoadCatalog parses the embedded catalog and its LaTeX bodies.
func LoadCatalog() (*Catalog, error) {
	raw, err := catalogFS.ReadFile("catalog/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]Template, len(file.Templates))}
	for _, entry := range file.Templates {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			return nil, fmt.Errorf("catalog entry without id")
		}
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("duplicate template id %q", id)
		}
		body, err := catalogFS.ReadFile(path.Join("catalog", entry.File))
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", id, err)
		}
		tpl := Template{
			ID:            id,
			Name:          entry.Name,
			Description:   strings.TrimSpace(entry.Description),
			ImageURL:      entry.ImageURL,
			LatexTemplate: string(body),
			Placeholders:  latex.Placeholders(string(body)),
		}
		c.ordered = append(c.ordered, tpl)
		c.byID[id] = tpl
	}
	return c, nil
}

// MustLoadCatalog panics if the embedded catalog is malformed.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// List returns every template in display order.
func (c *Catalog) List() []Template {
	out := make([]Template, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Get returns the template with id or ErrNotFound.
func (c *Catalog) Get(id string) (Template, error) {
	tpl, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Template{}, ErrNotFound
	}
	return tpl, nil
}
