package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
		ok   bool
	}{
		{"ti", Tigrinya, true},
		{"ti-ER", Tigrinya, true},
		{"en-US", English, true},
		{"Arabic", Arabic, true},
		{"saho", Saho, true},
		{"tig", Tigre, true},
		{"fr", language.Und, false},
		{"", language.Und, false},
		{"not a tag!", language.Und, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		cookie string
		accept string
		want   language.Tag
	}{
		{name: "default", want: Tigrinya},
		{name: "query wins", query: "en", cookie: "ar", accept: "ar", want: English},
		{name: "cookie before header", cookie: "ar", accept: "en", want: Arabic},
		{name: "accept-language", accept: "fr;q=0.9, en-GB;q=0.8", want: English},
		{name: "unknown query falls through", query: "xx", accept: "ar-ER", want: Arabic},
		{name: "unsupported accept", accept: "ja", want: Tigrinya},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/"
			if tt.query != "" {
				target += "?lang=" + tt.query
			}
			r := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: LangCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}
			assert.Equal(t, tt.want, Resolve(r))
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "Tigrinya", Name(Tigrinya))
	assert.Equal(t, "Arabic", Name(Arabic))
	assert.Equal(t, "Tigrinya", Name(language.Japanese))
}
