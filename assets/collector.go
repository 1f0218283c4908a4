// Package assets collects the assets of a folder into a flat ordered list.
//
// A Collector is configured with a folder, a bitmask of asset types and
// whether to recurse into subfolders and sort by name. Refresh recomputes
// the list; with AutoRefresh set, Validate and Watch keep it up to date.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

// Asset is a handle to a collected asset.
type Asset struct {
	// Path relative to the root of the collector file system.
	Path string
	// Name is the file name without extension.
	Name string
	// Type holds every selected type the asset matched.
	Type Filter
}

// Query returns the paths of the assets of type tag under folder,
// including subfolders.
type Query func(fsys fs.FS, folder string, tag Filter) ([]string, error)

// FSQuery walks fsys and returns the files under folder whose extension
// belongs to tag, in lexical order.
func FSQuery(fsys fs.FS, folder string, tag Filter) ([]string, error) {
	t, ok := tagFor(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, tag)
	}

	var paths []string
	err := fs.WalkDir(fsys, folder, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && t.matches(d.Name()) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query %s in %s: %w", t.name, folder, err)
	}

	return paths, nil
}

// Collector gathers the assets of a folder.
type Collector struct {
	FS                fs.FS
	Folder            string
	IncludeSubfolders bool
	Filter            Filter
	SortByName        bool
	AutoRefresh       bool
	// Query defaults to FSQuery.
	Query Query

	mu     sync.RWMutex
	assets []Asset
}

// Refresh recomputes the asset list. A missing folder, a folder that is
// not a directory or an empty filter produce an empty list.
func (c *Collector) Refresh() error {
	assets, err := c.collect()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.assets = assets
	c.mu.Unlock()

	return nil
}

// Validate refreshes the list if AutoRefresh is set.
func (c *Collector) Validate() error {
	if !c.AutoRefresh {
		return nil
	}
	return c.Refresh()
}

func (c *Collector) collect() ([]Asset, error) {
	if c.FS == nil || c.Folder == "" {
		return nil, nil
	}

	folder := normalize(c.Folder)

	info, err := fs.Stat(c.FS, folder)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("stat %s: %w", folder, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	tags := c.Filter.selected()
	if len(tags) == 0 {
		return nil, nil
	}

	query := c.Query
	if query == nil {
		query = FSQuery
	}

	var order []string
	types := map[string]Filter{}

	for _, t := range tags {
		paths, err := query(c.FS, folder, t.flag)
		if err != nil {
			return nil, err
		}

		for _, p := range paths {
			p = normalize(p)
			if _, ok := types[p]; !ok {
				order = append(order, p)
			}
			types[p] |= t.flag
		}
	}

	assets := make([]Asset, 0, len(order))
	for _, p := range order {
		if !c.IncludeSubfolders && path.Dir(p) != folder {
			continue
		}
		assets = append(assets, Asset{Path: p, Name: name(p), Type: types[p]})
	}

	if c.SortByName {
		sort.SliceStable(assets, func(i, j int) bool {
			return assets[i].Name < assets[j].Name
		})
	}

	return assets, nil
}

// Assets returns the last computed list.
func (c *Collector) Assets() []Asset {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Asset, len(c.assets))
	copy(out, c.assets)
	return out
}

// Get returns the assets matching tag, in list order.
func (c *Collector) Get(tag Filter) []Asset {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Asset
	for _, a := range c.assets {
		if a.Type&tag != 0 {
			out = append(out, a)
		}
	}
	return out
}

// HasAny reports whether any asset matches tag.
func (c *Collector) HasAny(tag Filter) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, a := range c.assets {
		if a.Type&tag != 0 {
			return true
		}
	}
	return false
}

// Count returns the number of collected assets.
func (c *Collector) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.assets)
}

func normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	p = path.Clean(p)
	return strings.TrimPrefix(p, "/")
}

func name(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
