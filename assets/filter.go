package assets

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Filter is a bitmask of asset types.
type Filter uint32

// Asset types.
const (
	None          Filter = 0
	Texture2D     Filter = 1 << 0
	Sprite        Filter = 1 << 1
	AudioClip     Filter = 1 << 2
	VideoClip     Filter = 1 << 3
	TextAsset     Filter = 1 << 4
	Material      Filter = 1 << 5
	Model         Filter = 1 << 6
	AnimationClip Filter = 1 << 7
	Shader        Filter = 1 << 8
	Prefab        Filter = 1 << 9
	ScriptableObj Filter = 1 << 10
	Mesh          Filter = 1 << 11
	RenderTexture Filter = 1 << 12
	Cubemap       Filter = 1 << 13
	Texture3D     Filter = 1 << 14
	Font          Filter = 1 << 15
)

// ErrUnknownFilter is returned by ParseFilter for unknown type names.
var ErrUnknownFilter = errors.New("unknown asset filter")

type typeTag struct {
	flag Filter
	name string
	exts []string
}

// typeMap lists the selectable types in query order with the file
// extensions each one matches.
var typeMap = []typeTag{
	{Texture2D, "Texture2D", []string{".png", ".jpg", ".jpeg", ".tga", ".psd", ".bmp", ".gif", ".exr", ".hdr"}},
	{Sprite, "Sprite", []string{".png", ".jpg", ".jpeg", ".psd"}},
	{AudioClip, "AudioClip", []string{".wav", ".ogg", ".mp3", ".aiff", ".aif", ".flac"}},
	{VideoClip, "VideoClip", []string{".mp4", ".webm", ".mov", ".avi", ".m4v"}},
	{TextAsset, "TextAsset", []string{".txt", ".json", ".yaml", ".yml", ".xml", ".csv", ".bytes", ".md"}},
	{Material, "Material", []string{".mat"}},
	{Model, "Model", []string{".fbx", ".obj", ".gltf", ".glb", ".dae", ".blend"}},
	{AnimationClip, "AnimationClip", []string{".anim"}},
	{Shader, "Shader", []string{".shader", ".kage", ".hlsl", ".glsl", ".shadergraph"}},
	{Prefab, "Prefab", []string{".prefab"}},
	{ScriptableObj, "ScriptableObj", []string{".asset"}},
	{Mesh, "Mesh", []string{".mesh", ".fbx", ".obj"}},
	{RenderTexture, "RenderTexture", []string{".rendertexture"}},
	{Cubemap, "Cubemap", []string{".cubemap"}},
	{Texture3D, "Texture3D", []string{".texture3d"}},
	{Font, "Font", []string{".ttf", ".otf", ".fnt", ".fontsettings"}},
}

// Has reports whether every bit of flag is set in f.
func (f Filter) Has(flag Filter) bool {
	return flag != None && f&flag == flag
}

// String formats the set flags joined by "|".
func (f Filter) String() string {
	if f == None {
		return "None"
	}

	var names []string
	for _, t := range typeMap {
		if f.Has(t.flag) {
			names = append(names, t.name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("Filter(%d)", uint32(f))
	}

	return strings.Join(names, "|")
}

// ParseFilter parses type names separated by "|" or ",", case-insensitively.
func ParseFilter(s string) (Filter, error) {
	var f Filter

	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		part = strings.TrimSpace(part)
		if strings.EqualFold(part, "none") {
			continue
		}

		found := false
		for _, t := range typeMap {
			if strings.EqualFold(part, t.name) {
				f |= t.flag
				found = true
				break
			}
		}
		if !found {
			return None, fmt.Errorf("%w: %q", ErrUnknownFilter, part)
		}
	}

	return f, nil
}

// selected returns the type tags selected by f in query order.
func (f Filter) selected() []typeTag {
	var tags []typeTag
	for _, t := range typeMap {
		if f.Has(t.flag) {
			tags = append(tags, t)
		}
	}
	return tags
}

// matches reports whether the file name has one of the tag extensions.
func (t typeTag) matches(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range t.exts {
		if ext == e {
			return true
		}
	}
	return false
}

// tagFor returns the type tag of flag.
func tagFor(flag Filter) (typeTag, bool) {
	for _, t := range typeMap {
		if t.flag == flag {
			return t, true
		}
	}
	return typeTag{}, false
}
