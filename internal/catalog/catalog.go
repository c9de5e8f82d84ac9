// Package catalog holds the static exercise reference data the workout
// builder selects from. A Catalog is immutable once built.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/templui/fittrack/internal/model"
)

//go:embed exercises.toml
var defaultCatalog []byte

type Entry struct {
	Name         string             `toml:"name" json:"name"`
	Group        model.MuscleGroup  `toml:"group" json:"group"`
	MuscleGroups model.MuscleGroups `toml:"muscle_groups" json:"muscle_groups"`
	Beginner     bool               `toml:"beginner" json:"beginner"`
}

type catalogFile struct {
	Exercises []Entry `toml:"exercise"`
}

type Catalog struct {
	entries []Entry
	byGroup map[model.MuscleGroup][]Entry
}

// New builds a catalog from entries. Entry order within a group is kept and
// is the order the builder selects in.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		byGroup: make(map[model.MuscleGroup][]Entry),
	}
	seen := make(map[string]bool, len(entries))

	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("exercise %d: name is required", i)
		}
		if !e.Group.Valid() {
			return nil, fmt.Errorf("exercise %q: invalid group %q", e.Name, e.Group)
		}
		key := string(e.Group) + "/" + e.Name
		if seen[key] {
			return nil, fmt.Errorf("exercise %q listed twice under %s", e.Name, e.Group)
		}
		seen[key] = true

		if len(e.MuscleGroups) == 0 {
			e.MuscleGroups = model.MuscleGroups{e.Group}
		}
		for _, g := range e.MuscleGroups {
			if !g.Valid() {
				return nil, fmt.Errorf("exercise %q: invalid muscle group %q", e.Name, g)
			}
		}

		c.entries = append(c.entries, e)
		c.byGroup[e.Group] = append(c.byGroup[e.Group], e)
	}

	return c, nil
}

// Parse decodes a TOML catalog of [[exercise]] tables.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	_, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(f.Exercises)
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Select returns up to limit exercises filed under group, in catalog order.
func (c *Catalog) Select(group model.MuscleGroup, limit int, beginnerOnly bool) []Entry {
	var out []Entry
	for _, e := range c.byGroup[group] {
		if len(out) >= limit {
			break
		}
		if beginnerOnly && !e.Beginner {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (c *Catalog) Group(group model.MuscleGroup) []Entry {
	return append([]Entry(nil), c.byGroup[group]...)
}

func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

func (c *Catalog) Len() int {
	return len(c.entries)
}
