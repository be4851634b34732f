package config

import (
	"fmt"

	"github.com/GeertJohan/go.rice"
)

var resourceBox *rice.Box

// openBox opens the embedded resources payload. For go.rice's 'append' mode
// to work, the call to FindBox() has to be with a literal string parameter.
func openBox() {
	if resourceBox != nil {
		return
	}
	var err error
	resourceBox, err = rice.FindBox("resources")
	if err != nil {
		panic(err)
	}
}

// MustGetResource returns an embedded resource by name, panicking if it is
// missing. The embedded defaults are part of the binary; absence is a build
// defect, not a runtime condition.
func MustGetResource(name string) string {
	openBox()
	text, err := resourceBox.String(name)
	if err != nil {
		panic(fmt.Sprintf("resource %s not found", name))
	}
	return text
}
