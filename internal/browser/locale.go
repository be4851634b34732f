package browser

import (
	"os"
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// The locale forced onto the package-manager child, so that progress text
// arrives in a predictable language no matter how the host is configured.
const (
	installLang     = "en_US.UTF-8"
	installLanguage = "en_US"
)

// InstallEnv returns the current environment with the locale pinned to the
// fixed install pair. Any LANG, LANGUAGE or LC_* entries from the host are
// dropped first.
func InstallEnv() []string {
	env := make([]string, 0, len(os.Environ())+2)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "LANG=") ||
			strings.HasPrefix(kv, "LANGUAGE=") ||
			strings.HasPrefix(kv, "LC_") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "LANG="+installLang, "LANGUAGE="+installLanguage)
}

// HostLocale reports the host's configured locale as a canonical IETF tag,
// or "" when none is set. It is only used to note in the transcript which
// locale the install environment replaced.
func HostLocale() string {
	locale, err := jibber_jabber.DetectIETF()
	if err != nil {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	return tag.String()
}
