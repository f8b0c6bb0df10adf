package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
)

const (
	// CatalogFile is the embedded catalog definition.
	CatalogFile = "catalog.yaml"
	// EquipmentGroup is the catalog group holding equipment databases.
	EquipmentGroup = "equipment"
	// DefaultSubdir is the database directory relative to the working directory.
	DefaultSubdir = "databases"
)

// DatabaseRef pairs a category label with the location of its database file.
type DatabaseRef struct {
	Name     string // Category label used for display (e.g., "Food")
	Location string // Path to the newline-delimited database file
}

// DatabaseDef is one database entry in catalog.yaml.
type DatabaseDef struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// GroupDef is a named group of databases sharing a directory.
type GroupDef struct {
	Name      string        `yaml:"name"`
	Dir       string        `yaml:"dir"`
	Databases []DatabaseDef `yaml:"databases"`
}

// CatalogFileDef represents the structure of catalog.yaml.
type CatalogFileDef struct {
	Groups []GroupDef `yaml:"groups"`
}

// Registry is an immutable catalog of databases.
type Registry struct {
	refs []DatabaseRef
}

// New creates a registry from the given refs. The slice is copied.
func New(refs []DatabaseRef) (*Registry, error) {
	if len(refs) == 0 {
		return nil, errors.New("registry needs at least one database")
	}
	copied := make([]DatabaseRef, len(refs))
	for i, ref := range refs {
		if strings.TrimSpace(ref.Name) == "" {
			return nil, fmt.Errorf("database %d has an empty name", i)
		}
		if strings.TrimSpace(ref.Location) == "" {
			return nil, fmt.Errorf("database %q has an empty location", ref.Name)
		}
		copied[i] = ref
	}
	return &Registry{refs: copied}, nil
}

// Load builds the equipment registry from the embedded catalog, resolving
// file locations against baseDir.
func Load(baseDir string) (*Registry, error) {
	return LoadGroup(baseDir, EquipmentGroup)
}

// LoadGroup builds a registry for one catalog group.
func LoadGroup(baseDir, group string) (*Registry, error) {
	catalog, err := LoadFile[CatalogFileDef](CatalogFile)
	if err != nil {
		return nil, err
	}
	for _, g := range catalog.Groups {
		if g.Name != group {
			continue
		}
		refs := make([]DatabaseRef, 0, len(g.Databases))
		for _, db := range g.Databases {
			refs = append(refs, DatabaseRef{
				Name:     db.Name,
				Location: filepath.Join(baseDir, g.Dir, db.File),
			})
		}
		return New(refs)
	}
	return nil, fmt.Errorf("no %q group in %s", group, CatalogFile)
}

// BaseDir resolves the database directory. A relative subdir is joined to cwd.
func BaseDir(cwd, subdir string) string {
	if subdir == "" {
		subdir = DefaultSubdir
	}
	if filepath.IsAbs(subdir) {
		return subdir
	}
	return filepath.Join(cwd, subdir)
}

// Pick selects one database uniformly at random.
func (r *Registry) Pick(rng *rand.Rand) DatabaseRef {
	return r.refs[rng.Intn(len(r.refs))]
}

// ByName returns the database with the given category name, ignoring case.
func (r *Registry) ByName(name string) (DatabaseRef, bool) {
	for _, ref := range r.refs {
		if strings.EqualFold(ref.Name, name) {
			return ref, true
		}
	}
	return DatabaseRef{}, false
}

// All returns a copy of every database in catalog order.
func (r *Registry) All() []DatabaseRef {
	return append([]DatabaseRef(nil), r.refs...)
}

// Names returns the category labels in catalog order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.refs))
	for i, ref := range r.refs {
		names[i] = ref.Name
	}
	return names
}

// Count returns the number of databases in the registry.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	return len(r.refs)
}
