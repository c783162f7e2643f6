package templates

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	var ids []string
	for _, tpl := range c.List() {
		ids = append(ids, tpl.ID)
		if !strings.Contains(tpl.LatexTemplate, `\begin{document}`) {
			t.Fatalf("%s: missing document body", tpl.ID)
		}
		if tpl.Name == "" || tpl.ImageURL == "" {
			t.Fatalf("%s: incomplete metadata %#v", tpl.ID, tpl)
		}
	}
	want := []string{"modern-professional", "creative-designer", "academic-scholar"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
}

func TestCatalogPlaceholders(t *testing.T) {
	c := MustLoadCatalog()
	base := []string{"CONTACT_INFO", "EDUCATION", "EXPERIENCE", "NAME", "SKILLS", "SUMMARY"}

	modern, _ := c.Get("modern-professional")
	if !reflect.DeepEqual(modern.Placeholders, base) {
		t.Fatalf("modern placeholders = %v", modern.Placeholders)
	}
	academic, _ := c.Get("academic-scholar")
	want := []string{"AWARDS", "CONTACT_INFO", "EDUCATION", "EXPERIENCE", "NAME", "PUBLICATIONS", "SKILLS", "SUMMARY"}
	if !reflect.DeepEqual(academic.Placeholders, want) {
		t.Fatalf("academic placeholders = %v", academic.Placeholders)
	}
}

func TestCatalogGetUnknown(t *testing.T) {
	c := MustLoadCatalog()
	if _, err := c.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListReturnsCopy(t *testing.T) {
	c := MustLoadCatalog()
	list := c.List()
	list[0].Name = "mutated"
	if again := c.List(); again[0].Name == "mutated" {
		t.Fatalf("List must not expose internal slice")
	}
}
