package domain

import (
	"encoding/json"
	"regexp"
	"strings"
)

// tagArrayPattern matches the first bracketed span. The match is non-greedy,
// so a tag that itself contains "]" truncates the array.
var tagArrayPattern = regexp.MustCompile(`\[[\s\S]*?\]`)

// tagSeparators are tried in priority order; the first one present wins.
var tagSeparators = []string{"\n", "、", "，", ","}

// ParseTagList turns a free-text model reply into an ordered list of tags.
//
// A JSON array anywhere in the reply is preferred. Otherwise the reply is
// split on the first separator it contains, and a reply with no separator is
// returned as a single tag. Blank input yields an empty list.
func ParseTagList(raw string) []string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return []string{}
	}

	if span := tagArrayPattern.FindString(text); span != "" {
		if tags, ok := decodeTagArray(span); ok {
			return tags
		}
	}

	for _, sep := range tagSeparators {
		if strings.Contains(text, sep) {
			return splitTags(text, sep)
		}
	}

	return []string{text}
}

func decodeTagArray(span string) ([]string, bool) {
	dec := json.NewDecoder(strings.NewReader(span))
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, false
	}

	tags := make([]string, 0, len(items))
	for _, item := range items {
		if tag, ok := stringifyTag(item); ok {
			tags = append(tags, tag)
		}
	}
	return tags, true
}

// stringifyTag renders a decoded array element, reporting false for falsy values.
func stringifyTag(item any) (string, bool) {
	var s string
	switch v := item.(type) {
	case nil:
		return "", false
	case string:
		s = v
	case bool:
		if !v {
			return "", false
		}
		s = "true"
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return "", false
		}
		s = v.String()
	case []any:
		if len(v) == 0 {
			return "", false
		}
		s = marshalTag(v)
	case map[string]any:
		if len(v) == 0 {
			return "", false
		}
		s = marshalTag(v)
	}

	s = strings.TrimSpace(s)
	return s, s != ""
}

func marshalTag(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func splitTags(text, sep string) []string {
	parts := strings.Split(text, sep)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
