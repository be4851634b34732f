package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownBrowsers(t *testing.T) {
	expected := map[ID]struct {
		frontEnd FrontEnd
		pkg      string
	}{
		Brave:        {Pacman, "brave"},
		Chromium:     {Pacman, "chromium"},
		Falkon:       {Pacman, "falkon"},
		Firefox:      {Pacman, "firefox"},
		Vivaldi:      {Pacman, "vivaldi"},
		GoogleChrome: {Pamac, "google-chrome"},
		LibreWolf:    {Pamac, "librewolf-bin"},
		Opera:        {Pamac, "opera"},
		Edge:         {Pamac, "microsoft-edge-stable-bin"},
		ZenBrowser:   {Pamac, "zen-browser-bin"},
	}
	require.Len(t, Catalog, len(expected))

	for id, want := range expected {
		entry, err := Lookup(id)
		require.NoError(t, err, "lookup %s", id)
		assert.Equal(t, id, entry.ID)
		assert.Equal(t, want.frontEnd, entry.FrontEnd, "front-end for %s", id)
		assert.Equal(t, want.pkg, entry.Package, "package for %s", id)
		assert.NotEmpty(t, entry.Variants, "variants for %s", id)
	}
}

func TestLookupUnknownBrowser(t *testing.T) {
	_, err := Lookup("opera-gx")
	assert.ErrorIs(t, err, ErrUnknownBrowser)
}

func TestInstalledVariantPicksFirstPresent(t *testing.T) {
	entry, err := Lookup(Firefox)
	require.NoError(t, err)
	require.Len(t, entry.Variants, 2)

	variant, ok := entry.InstalledVariant(func(path string) bool {
		return path == entry.Variants[1].Check
	})
	require.True(t, ok)
	assert.Equal(t, "org.mozilla.firefox.desktop", variant.Desktop)

	_, ok = entry.InstalledVariant(func(string) bool { return false })
	assert.False(t, ok)
}

func TestStates(t *testing.T) {
	states := States(func(path string) bool { return path == "/usr/bin/falkon" })
	require.Len(t, states, len(Catalog))

	byID := map[ID]State{}
	for _, state := range states {
		byID[state.ID] = state
	}
	assert.True(t, byID[Falkon].Installed)
	assert.Equal(t, "org.kde.falkon.desktop", byID[Falkon].Desktop)
	assert.False(t, byID[Opera].Installed)
	assert.Empty(t, byID[Opera].Desktop)
}
