package render

import "strings"

// rewriteModals applies spec.md §4.8's modal-verb rewrite rules to a
// lowered, period-stripped template body. Formal drops the modal
// ("must "/"may " are removed outright, including from "must not "/"may
// not ", which collapses to "not "); casual and passionate instead turn
// the modal into an infinitive ("to "/"not to ").
func rewriteModals(v Voice, body string) string {
	switch v {
	case Formal:
		body = strings.ReplaceAll(body, "must ", "")
		body = strings.ReplaceAll(body, "may ", "")
		return collapseSpaces(body)
	case Casual, Passionate:
		body = strings.ReplaceAll(body, "must not ", "not to ")
		body = strings.ReplaceAll(body, "may not ", "not to ")
		body = strings.ReplaceAll(body, "must ", "to ")
		body = strings.ReplaceAll(body, "may ", "to ")
		return body
	default:
		return body
	}
}

func collapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
