package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"ai_dashboard_server/internal/types"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "lang"
)

var (
	Tigrinya = language.MustParse("ti")
	English  = language.English
	Arabic   = language.Arabic
	Saho     = language.MustParse("ssy")
	Tigre    = language.MustParse("tig")
)

// supported is ordered; the first tag is the matcher fallback.
var supported = []language.Tag{Tigrinya, English, Arabic}

var matcher = language.NewMatcher(supported)

var names = map[language.Tag]string{
	Tigrinya: types.Tigrinya,
	English:  types.English,
	Arabic:   types.Arabic,
	Saho:     types.Saho,
	Tigre:    types.Tigre,
}

// Default returns the dashboard's default language.
func Default() language.Tag {
	return Tigrinya
}

// Supported returns the UI languages in preference order.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Parse maps a tag or language name ("ti", "en-US", "Arabic") to a known tag.
func Parse(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	for tag, name := range names {
		if strings.EqualFold(name, value) {
			return tag, true
		}
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	base, _ := tag.Base()
	for known := range names {
		if kb, _ := known.Base(); kb == base {
			return known, true
		}
	}
	return language.Und, false
}

// Name returns the English name of the language for use in prompts.
func Name(tag language.Tag) string {
	if name, ok := names[tag]; ok {
		return name
	}
	return names[Default()]
}

// Resolve determines the language for a request from the lang query parameter,
// the lang cookie and Accept-Language, in that order.
func Resolve(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	if tag, ok := Parse(r.URL.Query().Get(LangParam)); ok {
		return tag
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := Parse(cookie.Value); ok {
			return tag
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return supported[idx]
			}
		}
	}
	return Default()
}
