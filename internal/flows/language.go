package flows

import "slices"

// languaged is implemented by inputs whose language may be filled from the request.
type languaged interface {
	languageField() *string
}

// languagePolicy fills an empty input language: the request language when
// the flow accepts it, the fallback otherwise.
type languagePolicy struct {
	supported []string
	fallback  string
}

func (p languagePolicy) apply(in any, lang string) {
	l, ok := in.(languaged)
	if !ok || (len(p.supported) == 0 && p.fallback == "") {
		return
	}
	field := l.languageField()
	if *field != "" {
		return
	}
	if slices.Contains(p.supported, lang) {
		*field = lang
		return
	}
	*field = p.fallback
}
