package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSONObject is returned when no JSON object can be recovered from model output.
var ErrNoJSONObject = errors.New("no JSON object found in model output")

// wrapperKeys are keys models sometimes nest the real payload under.
var wrapperKeys = []string{"result", "data", "output", "response_json"}

// fencedBlock matches a ```json (or bare ```) block anywhere in a reply.
var fencedBlock = regexp.MustCompile("(?s)```(?:json|JSON)?[ \t]*\n?(.*?)```")

// ExtractJSONObject recovers a JSON object from raw model output.
//
// Models wrap JSON in ```json fences, surround it with prose, or nest the
// payload under a single wrapper key. required lists top-level keys the payload
// must have; when the outer object lacks them and has a single wrapper key, the
// inner object is returned instead.
func ExtractJSONObject(raw string, required ...string) (json.RawMessage, error) {
	candidate, ok := findObject(strings.TrimSpace(raw))
	if !ok {
		return nil, ErrNoJSONObject
	}

	var outer map[string]json.RawMessage
	if err := json.Unmarshal(candidate, &outer); err != nil {
		return nil, ErrNoJSONObject
	}
	if hasAll(outer, required) || len(outer) != 1 {
		return candidate, nil
	}
	for _, key := range wrapperKeys {
		inner, ok := outer[key]
		if ok && isObject(inner) {
			return inner, nil
		}
	}
	return candidate, nil
}

// findObject tries the whole reply, then fenced blocks, then every '{' in turn.
func findObject(s string) (json.RawMessage, bool) {
	if obj, ok := wholeObject(s); ok {
		return obj, true
	}
	for _, m := range fencedBlock.FindAllStringSubmatch(s, -1) {
		if obj, ok := wholeObject(strings.TrimSpace(m[1])); ok {
			return obj, true
		}
	}
	for i := strings.IndexByte(s, '{'); i >= 0; {
		var obj json.RawMessage
		if err := json.NewDecoder(strings.NewReader(s[i:])).Decode(&obj); err == nil && isObject(obj) {
			return obj, true
		}
		next := strings.IndexByte(s[i+1:], '{')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return nil, false
}

func wholeObject(s string) (json.RawMessage, bool) {
	b := []byte(s)
	if json.Valid(b) && isObject(b) {
		return json.RawMessage(b), true
	}
	return nil, false
}

func isObject(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}

func hasAll(obj map[string]json.RawMessage, keys []string) bool {
	if len(keys) == 0 {
		return true
	}
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			return false
		}
	}
	return true
}
