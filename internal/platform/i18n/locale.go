// Package i18n resolves user locale preferences against the locales bloom ships.
package i18n

import (
	"strings"

	"github.com/louisbranch/bloom/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supportedTags)

// Default returns the fallback locale tag.
func Default() language.Tag {
	return supportedTags[0]
}

// Supported returns the locale tags with message catalogs.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// ResolveTag maps a free-form preference ("en", "pt", "pt-BR", an
// Accept-Language list) to the closest supported tag.
func ResolveTag(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default()
	}
	prefs, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(prefs) == 0 {
		return Default()
	}
	_, index, confidence := matcher.Match(prefs...)
	if confidence == language.No {
		return Default()
	}
	return supportedTags[index]
}

// LocaleString returns the catalog locale identifier for tag, e.g. "pt-BR".
func LocaleString(tag language.Tag) string {
	return tag.String()
}

// Printer returns a message printer for tag backed by the embedded catalogs.
func Printer(tag language.Tag) *message.Printer {
	_ = catalog.Default()
	return message.NewPrinter(tag)
}
