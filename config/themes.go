package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Theme is a stage theme: which levels use it and which music, background
// and ambient effects come with it.
type Theme struct {
	Name     string   `yaml:"name"`
	First    int      `yaml:"first"`
	Last     int      `yaml:"last"`
	Music    string   `yaml:"music"`
	Sky      [3]uint8 `yaml:"sky"`
	Ambience bool     `yaml:"ambience"`
	Bird     string   `yaml:"bird"`
	Cicada   bool     `yaml:"cicada"`
	Rain     bool     `yaml:"rain"`
	Lanterns bool     `yaml:"lanterns"`
	Gong     bool     `yaml:"gong"`
}

// Covers reports whether level falls inside the theme's inclusive range.
func (t Theme) Covers(level int) bool {
	return level >= t.First && level <= t.Last
}

// ThemeTable is the ordered theme list plus the levels forced to the oni theme.
type ThemeTable struct {
	Themes    []Theme `yaml:"themes"`
	OniLevels []int   `yaml:"oni_levels"`
	Fallback  string  `yaml:"fallback"`
	Override  string  `yaml:"override"`
}

// Resolve picks the theme for a level: the override theme for the listed
// levels, otherwise the first range match, otherwise the fallback.
func (t ThemeTable) Resolve(level int) Theme {
	if slices.Contains(t.OniLevels, level) {
		if th, ok := t.Lookup(t.Override); ok {
			return th
		}
	}
	for _, th := range t.Themes {
		if th.Covers(level) {
			return th
		}
	}
	if th, ok := t.Lookup(t.Fallback); ok {
		return th
	}
	return Theme{Name: t.Fallback}
}

func (t ThemeTable) Lookup(name string) (Theme, bool) {
	for _, th := range t.Themes {
		if th.Name == name {
			return th, true
		}
	}
	return Theme{}, false
}

// Merge replaces themes with matching names and appends new ones. A non-nil
// oni level list replaces the current one.
func (t *ThemeTable) Merge(o ThemeTable) {
	for _, th := range o.Themes {
		idx := slices.IndexFunc(t.Themes, func(cur Theme) bool { return cur.Name == th.Name })
		if idx >= 0 {
			t.Themes[idx] = th
			continue
		}
		t.Themes = append(t.Themes, th)
	}
	if o.OniLevels != nil {
		t.OniLevels = o.OniLevels
	}
	if o.Fallback != "" {
		t.Fallback = o.Fallback
	}
	if o.Override != "" {
		t.Override = o.Override
	}
}

var Themes ThemeTable

// LoadThemeOverrides merges a YAML theme document into Themes.
func LoadThemeOverrides(r io.Reader) error {
	var doc ThemeTable
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("failed to decode theme overrides: %w", err)
	}
	for _, th := range doc.Themes {
		if th.Name == "" {
			return fmt.Errorf("failed to decode theme overrides: theme without a name")
		}
		if th.Last < th.First {
			return fmt.Errorf("failed to decode theme overrides: theme %q has range %d-%d", th.Name, th.First, th.Last)
		}
	}
	Themes.Merge(doc)
	return nil
}

// LoadThemeOverridesFile applies path if it exists. A missing file is not an error.
func LoadThemeOverridesFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open theme overrides: %w", err)
	}
	defer f.Close()

	if err := LoadThemeOverrides(f); err != nil {
		return err
	}
	log.Printf("Loaded theme overrides from %s", path)
	return nil
}

// Theme names
const (
	ThemeForest            = "forest"
	ThemeForestNight       = "forest_night"
	ThemePagodaRealm       = "pagoda_realm"
	ThemeBambooForest      = "bamboo_forest"
	ThemeBeach             = "beach"
	ThemeCursedPagodaRealm = "cursed_pagoda_realm"
	ThemeOni               = "oni"
)

func defaultThemes() ThemeTable {
	return ThemeTable{
		Fallback:  ThemeForest,
		Override:  ThemeOni,
		OniLevels: []int{10, 20},
		Themes: []Theme{
			{Name: ThemeForest, First: 0, Last: 5, Music: "forest_theme", Sky: [3]uint8{162, 215, 221}, Ambience: true, Bird: "sparrows"},
			{Name: ThemeForestNight, First: 6, Last: 10, Music: "forest_night_theme", Sky: [3]uint8{27, 47, 59}, Ambience: true, Bird: "sparrows", Cicada: true, Rain: true},
			{Name: ThemePagodaRealm, First: 11, Last: 20, Music: "pagoda_realm_theme", Sky: [3]uint8{241, 148, 131}, Ambience: true, Lanterns: true, Gong: true},
			{Name: ThemeBambooForest, First: 21, Last: 25, Music: "forest_theme", Sky: [3]uint8{197, 197, 106}, Ambience: true, Bird: "sparrows", Cicada: true, Rain: true},
			{Name: ThemeBeach, First: 26, Last: 30, Music: "beach_theme", Sky: [3]uint8{248, 195, 205}, Ambience: true, Bird: "sparrows", Rain: true},
			{Name: ThemeCursedPagodaRealm, First: 31, Last: 40, Music: "pagoda_realm_theme", Sky: [3]uint8{86, 84, 162}, Lanterns: true},
			{Name: ThemeOni, First: 41, Last: 99, Music: "oni_theme", Sky: [3]uint8{100, 54, 60}, Rain: true},
		},
	}
}

func init() {
	Themes = defaultThemes()
}
