// Package scene resolves scene references to build indices and loads them.
//
// A Reference stores a design-time scene selection as a path and a GUID so
// that it survives the scene file being moved. At runtime the path is looked
// up in the BuildSettings to obtain a build index, which a Manager loads.
package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// SceneExt is the file extension of scene assets.
const SceneExt = ".scene"

// MetaExt is the extension of the sidecar file holding an asset GUID.
const MetaExt = ".meta"

// ErrNoGUID is returned for meta files without a guid.
var ErrNoGUID = errors.New("meta file has no guid")

// Asset is a scene asset known to the database.
type Asset struct {
	Path string
	GUID string
}

type meta struct {
	GUID string `yaml:"guid"`
}

// Database maps scene asset GUIDs to paths and back.
type Database struct {
	byGUID map[string]string
	byPath map[string]string
}

// NewDatabase creates an empty database.
func NewDatabase() *Database {
	return &Database{
		byGUID: map[string]string{},
		byPath: map[string]string{},
	}
}

// LoadDatabase scans fsys for scene files with a meta sidecar and indexes them.
func LoadDatabase(fsys fs.FS) (*Database, error) {
	db := NewDatabase()

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, SceneExt+MetaExt) {
			return nil
		}

		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		var m meta
		if err := yaml.Unmarshal(b, &m); err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		if m.GUID == "" {
			return fmt.Errorf("%s: %w", p, ErrNoGUID)
		}

		scenePath := strings.TrimSuffix(p, MetaExt)
		if _, err := fs.Stat(fsys, scenePath); err != nil {
			// Orphaned meta file.
			return nil
		}

		db.Add(scenePath, m.GUID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load scene database: %w", err)
	}

	return db, nil
}

// Add indexes a scene path under guid.
func (db *Database) Add(path, guid string) {
	if old, ok := db.byPath[path]; ok {
		delete(db.byGUID, old)
	}
	if old, ok := db.byGUID[guid]; ok {
		delete(db.byPath, old)
	}
	db.byGUID[guid] = path
	db.byPath[path] = guid
}

// GUIDToPath returns the path of guid, or "" if unknown.
func (db *Database) GUIDToPath(guid string) string {
	return db.byGUID[guid]
}

// PathToGUID returns the guid of path, or "" if unknown.
func (db *Database) PathToGUID(path string) string {
	return db.byPath[path]
}

// Exists reports whether a scene is indexed at path.
func (db *Database) Exists(path string) bool {
	_, ok := db.byPath[path]
	return ok
}

// Load returns the asset at path, or nil if unknown.
func (db *Database) Load(path string) *Asset {
	guid, ok := db.byPath[path]
	if !ok {
		return nil
	}
	return &Asset{Path: path, GUID: guid}
}

// Len returns the number of indexed scenes.
func (db *Database) Len() int {
	return len(db.byPath)
}
