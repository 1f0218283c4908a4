package scene

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// BuildScene is an entry of the build settings.
type BuildScene struct {
	Path    string `yaml:"path"`
	Enabled bool   `yaml:"enabled"`
}

// BuildSettings lists the scenes included in a build. Build indices count
// enabled scenes only.
type BuildSettings struct {
	Scenes []BuildScene `yaml:"scenes"`
}

// ReadBuildSettings decodes YAML build settings.
func ReadBuildSettings(r io.Reader) (*BuildSettings, error) {
	var b BuildSettings
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode build settings: %w", err)
	}
	return &b, nil
}

// IndexOf returns the build index of path, or -1 if it is not an enabled
// scene of the build.
func (b *BuildSettings) IndexOf(path string) int {
	if b == nil || path == "" {
		return -1
	}

	index := 0
	for _, s := range b.Scenes {
		if !s.Enabled {
			continue
		}
		if s.Path == path {
			return index
		}
		index++
	}

	return -1
}

// PathOf returns the path of the enabled scene at index.
func (b *BuildSettings) PathOf(index int) (string, bool) {
	if b == nil || index < 0 {
		return "", false
	}

	i := 0
	for _, s := range b.Scenes {
		if !s.Enabled {
			continue
		}
		if i == index {
			return s.Path, true
		}
		i++
	}

	return "", false
}

// Len returns the number of enabled scenes.
func (b *BuildSettings) Len() int {
	if b == nil {
		return 0
	}

	n := 0
	for _, s := range b.Scenes {
		if s.Enabled {
			n++
		}
	}
	return n
}
