package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantError bool
	}{
		{name: "get docs theme", themeName: "docs", wantError: false},
		{name: "get neon theme", themeName: "neon", wantError: false},
		{name: "get minimal theme", themeName: "minimal", wantError: false},
		{name: "get dracula theme", themeName: "dracula", wantError: false},
		{name: "get monokai theme", themeName: "monokai", wantError: false},
		{name: "get solarized theme", themeName: "solarized", wantError: false},
		{name: "get gruvbox theme", themeName: "gruvbox", wantError: false},
		{name: "get nord theme", themeName: "nord", wantError: false},
		{name: "get tokyo-night theme", themeName: "tokyo-night", wantError: false},
		{name: "get catppuccin theme", themeName: "catppuccin", wantError: false},
		{name: "get nonexistent theme", themeName: "nonexistent", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Get(tt.themeName)
			if tt.wantError {
				require.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.themeName, got.Name)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Cleanup(func() { current = nil })

	current = nil

	require.NoError(t, Load("neon"))
	assert.Equal(t, "neon", Current().Name)

	err := Load("nonexistent")
	require.Error(t, err)
	// Current theme is left unchanged on a failed Load.
	assert.Equal(t, "neon", Current().Name)
}

func TestCurrentDefaultsToDocs(t *testing.T) {
	t.Cleanup(func() { current = nil })

	current = nil
	assert.Equal(t, "docs", Current().Name)
}

func TestAvailable(t *testing.T) {
	got := Available()
	want := []string{
		"catppuccin", "docs", "dracula", "gruvbox", "minimal",
		"monokai", "neon", "nord", "solarized", "tokyo-night",
	}
	assert.Equal(t, want, got)
}

func TestHeadingStylesByLevel(t *testing.T) {
	h := HeadingStyles{
		H1: HeadingStyle{Prefix: "1"},
		H2: HeadingStyle{Prefix: "2"},
		H3: HeadingStyle{Prefix: "3"},
		H4: HeadingStyle{Prefix: "4"},
		H5: HeadingStyle{Prefix: "5"},
		H6: HeadingStyle{Prefix: "6"},
	}

	tests := []struct {
		level int
		want  string
	}{
		{0, "1"},
		{1, "1"},
		{2, "2"},
		{3, "3"},
		{4, "4"},
		{5, "5"},
		{6, "6"},
		{99, "6"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, h.ByLevel(tt.level).Prefix)
	}
}

func TestCalloutStylesByKind(t *testing.T) {
	c := docsCalloutStyles()

	assert.Equal(t, c.Note, c.ByKind("note"))
	assert.Equal(t, c.Note, c.ByKind("unknown"))
	assert.Equal(t, c.Warning, c.ByKind("warning"))
	assert.Equal(t, c.Important, c.ByKind("important"))
	assert.Equal(t, c.Tip, c.ByKind("tip"))
	assert.Equal(t, c.Caution, c.ByKind("caution"))
}

func TestAllBuiltinThemesRegisterDistinctNames(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range Available() {
		th, err := Get(name)
		require.NoError(t, err)
		assert.False(t, seen[name], "duplicate theme name %q", name)
		seen[name] = true
		assert.Equal(t, name, th.Name)
		assert.NotEmpty(t, string(th.Colors.Primary))
	}
}
