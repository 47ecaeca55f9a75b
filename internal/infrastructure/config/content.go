package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// ContentConfig lists the content files that make up the game's locations.
type ContentConfig struct {
	Locations []ContentSource `yaml:"locations,omitempty"`
}

// ContentSource is one content file; each file becomes one location.
type ContentSource struct {
	// Name of the location. Defaults to the file name without extension.
	Name string `yaml:"name,omitempty"`
	// Path to the file. Relative paths resolve against the config directory.
	Path string `yaml:"path"`
	// Format overrides detection from the file extension (json, yaml, csv, ini).
	Format string `yaml:"format,omitempty"`
}

// LocationName returns the configured name or one derived from the path.
func (s ContentSource) LocationName() string {
	if s.Name != "" {
		return s.Name
	}
	base := filepath.Base(s.Path)
	return SanitizeName(strings.TrimSuffix(base, filepath.Ext(base)))
}

// Sources returns the content sources with paths resolved against basePath.
func (c ContentConfig) Sources(basePath string) []ContentSource {
	out := make([]ContentSource, len(c.Locations))
	for i, src := range c.Locations {
		src.Path = resolve(basePath, src.Path)
		out[i] = src
	}
	return out
}

// Get returns the source for the named location.
func (c ContentConfig) Get(name string) (*ContentSource, error) {
	if len(c.Locations) == 0 {
		return nil, fmt.Errorf("no locations configured")
	}

	names := make([]string, 0, len(c.Locations))
	for i := range c.Locations {
		src := c.Locations[i]
		if src.LocationName() == name {
			return &src, nil
		}
		if len(names) < 5 {
			names = append(names, src.LocationName())
		}
	}
	if len(c.Locations) > len(names) {
		names = append(names, "...")
	}
	return nil, fmt.Errorf("location %q not found (available: %s)", name, strings.Join(names, ", "))
}

// Select returns the named sources, in the given order, with paths resolved
// against basePath.
func (c ContentConfig) Select(basePath string, names []string) ([]ContentSource, error) {
	out := make([]ContentSource, 0, len(names))
	for _, name := range names {
		src, err := c.Get(name)
		if err != nil {
			return nil, err
		}
		src.Path = resolve(basePath, src.Path)
		out = append(out, *src)
	}
	return out, nil
}

// SanitizeName converts a file stem to a location name.
func SanitizeName(name string) string {
	name = strings.ToLower(name)

	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")

	name = reNonAlphanumeric.ReplaceAllString(name, "")
	name = reMultipleUnderscores.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")

	if name == "" {
		return "location"
	}
	return name
}
