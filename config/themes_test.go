package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeResolve(t *testing.T) {
	table := defaultThemes()

	cases := []struct {
		level int
		want  string
	}{
		{0, ThemeForest},
		{5, ThemeForest},
		{6, ThemeForestNight},
		{9, ThemeForestNight},
		{10, ThemeOni},
		{11, ThemePagodaRealm},
		{20, ThemeOni},
		{21, ThemeBambooForest},
		{30, ThemeBeach},
		{40, ThemeCursedPagodaRealm},
		{41, ThemeOni},
		{99, ThemeOni},
		{150, ThemeForest},
		{-1, ThemeForest},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, table.Resolve(tc.level).Name, "level %d", tc.level)
	}
}

func TestThemeFlags(t *testing.T) {
	table := defaultThemes()

	night := table.Resolve(7)
	assert.True(t, night.Rain)
	assert.True(t, night.Cicada)
	assert.Equal(t, "sparrows", night.Bird)

	pagoda := table.Resolve(12)
	assert.True(t, pagoda.Lanterns)
	assert.True(t, pagoda.Gong)
	assert.Empty(t, pagoda.Bird)
}

func TestLoadThemeOverrides(t *testing.T) {
	saved := Themes
	t.Cleanup(func() { Themes = saved })
	Themes = defaultThemes()

	doc := `
oni_levels: [3]
themes:
  - name: forest
    first: 0
    last: 2
    music: forest_theme
    sky: [1, 2, 3]
  - name: desert
    first: 100
    last: 120
    music: beach_theme
    rain: true
`
	require.NoError(t, LoadThemeOverrides(strings.NewReader(doc)))

	assert.Equal(t, ThemeOni, Themes.Resolve(3).Name)
	assert.Equal(t, ThemeForestNight, Themes.Resolve(10).Name, "oni list was replaced")
	assert.Equal(t, ThemeForest, Themes.Resolve(2).Name)
	assert.Equal(t, [3]uint8{1, 2, 3}, Themes.Resolve(2).Sky)
	assert.Equal(t, "desert", Themes.Resolve(110).Name)
	assert.Len(t, Themes.Themes, 8)
}

func TestLoadThemeOverridesRejectsBadDocuments(t *testing.T) {
	saved := Themes
	t.Cleanup(func() { Themes = saved })
	Themes = defaultThemes()

	assert.Error(t, LoadThemeOverrides(strings.NewReader("themes: [{first: 1, last: 2}]")))
	assert.Error(t, LoadThemeOverrides(strings.NewReader("themes: [{name: x, first: 5, last: 2}]")))
	assert.Error(t, LoadThemeOverrides(strings.NewReader("themes: {")))
	assert.NoError(t, LoadThemeOverrides(strings.NewReader("")))
	assert.Equal(t, defaultThemes(), Themes)
}

func TestLoadThemeOverridesFile(t *testing.T) {
	saved := Themes
	t.Cleanup(func() { Themes = saved })
	Themes = defaultThemes()

	assert.NoError(t, LoadThemeOverridesFile(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "themes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("oni_levels: []\n"), 0o644))
	require.NoError(t, LoadThemeOverridesFile(path))
	assert.Equal(t, ThemeForestNight, Themes.Resolve(10).Name)
}
