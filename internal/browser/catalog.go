package browser

import (
	"errors"
	"fmt"
)

// ID names one of the browsers this tool knows how to install. The set is
// closed: anything outside it is rejected before a package manager is run.
type ID string

const (
	Brave        ID = "brave"
	Chromium     ID = "chromium"
	Falkon       ID = "falkon"
	Firefox      ID = "firefox"
	Vivaldi      ID = "vivaldi"
	GoogleChrome ID = "google-chrome"
	LibreWolf    ID = "librewolf"
	Opera        ID = "opera"
	Edge         ID = "edge"
	ZenBrowser   ID = "zen-browser"
)

// FrontEnd selects the package-management tool used to resolve and install
// a package.
type FrontEnd int

const (
	// Pacman installs from the primary distribution repository.
	Pacman FrontEnd = iota
	// Pamac installs from the community-maintained repository.
	Pamac
)

func (f FrontEnd) String() string {
	switch f {
	case Pacman:
		return "pacman"
	case Pamac:
		return "pamac"
	}
	return fmt.Sprintf("FrontEnd(%d)", int(f))
}

// ErrUnknownBrowser is returned for identifiers outside the catalog.
var ErrUnknownBrowser = errors.New("unknown browser")

type (
	// Variant is one concrete build of a browser as it appears on disk.
	// Check is a path whose existence means the variant is installed, and
	// Desktop is the desktop-entry id used to make it the default browser.
	Variant struct {
		Check   string
		Desktop string
	}
	// Entry associates a browser identifier with the front-end and package
	// that install it, plus the variants used to detect it afterwards.
	Entry struct {
		ID       ID
		Label    string
		FrontEnd FrontEnd
		Package  string
		Variants []Variant
	}
)

// Catalog lists every supported browser, in display order. Browsers in the
// primary repository install through pacman, the rest through pamac.
var Catalog = []Entry{
	{
		ID: Brave, Label: "Brave", FrontEnd: Pacman, Package: "brave",
		Variants: []Variant{{Check: "/usr/bin/brave", Desktop: "brave-browser.desktop"}},
	},
	{
		ID: Chromium, Label: "Chromium", FrontEnd: Pacman, Package: "chromium",
		Variants: []Variant{{Check: "/usr/bin/chromium", Desktop: "chromium.desktop"}},
	},
	{
		ID: Falkon, Label: "Falkon", FrontEnd: Pacman, Package: "falkon",
		Variants: []Variant{{Check: "/usr/bin/falkon", Desktop: "org.kde.falkon.desktop"}},
	},
	{
		ID: Firefox, Label: "Firefox", FrontEnd: Pacman, Package: "firefox",
		Variants: []Variant{
			{Check: "/usr/bin/firefox", Desktop: "firefox.desktop"},
			{
				Check:   "/var/lib/flatpak/exports/bin/org.mozilla.firefox",
				Desktop: "org.mozilla.firefox.desktop",
			},
		},
	},
	{
		ID: Vivaldi, Label: "Vivaldi", FrontEnd: Pacman, Package: "vivaldi",
		Variants: []Variant{{Check: "/usr/bin/vivaldi-stable", Desktop: "vivaldi-stable.desktop"}},
	},
	{
		ID: GoogleChrome, Label: "Google Chrome", FrontEnd: Pamac, Package: "google-chrome",
		Variants: []Variant{{Check: "/usr/bin/google-chrome-stable", Desktop: "google-chrome.desktop"}},
	},
	{
		ID: LibreWolf, Label: "LibreWolf", FrontEnd: Pamac, Package: "librewolf-bin",
		Variants: []Variant{{Check: "/usr/bin/librewolf", Desktop: "librewolf.desktop"}},
	},
	{
		ID: Opera, Label: "Opera", FrontEnd: Pamac, Package: "opera",
		Variants: []Variant{{Check: "/usr/bin/opera", Desktop: "opera.desktop"}},
	},
	{
		ID: Edge, Label: "Microsoft Edge", FrontEnd: Pamac, Package: "microsoft-edge-stable-bin",
		Variants: []Variant{{Check: "/usr/bin/microsoft-edge-stable", Desktop: "microsoft-edge.desktop"}},
	},
	{
		ID: ZenBrowser, Label: "Zen Browser", FrontEnd: Pamac, Package: "zen-browser-bin",
		Variants: []Variant{{Check: "/usr/bin/zen-browser", Desktop: "zen.desktop"}},
	},
}

// Lookup finds the catalog entry for an identifier.
func Lookup(id ID) (Entry, error) {
	for _, entry := range Catalog {
		if entry.ID == id {
			return entry, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrUnknownBrowser, id)
}

// InstalledVariant returns the first variant of the entry present on disk.
// The exists function stands in for a filesystem check so that callers (and
// tests) control how presence is probed.
func (e Entry) InstalledVariant(exists func(string) bool) (Variant, bool) {
	for _, variant := range e.Variants {
		if exists(variant.Check) {
			return variant, true
		}
	}
	return Variant{}, false
}

// State is one browser's install status as reported by the status command.
type State struct {
	ID        ID
	Installed bool
	Desktop   string
}

// States probes every catalog browser and reports which are installed.
func States(exists func(string) bool) []State {
	states := make([]State, 0, len(Catalog))
	for _, entry := range Catalog {
		state := State{ID: entry.ID}
		if variant, ok := entry.InstalledVariant(exists); ok {
			state.Installed = true
			state.Desktop = variant.Desktop
		}
		states = append(states, state)
	}
	return states
}
