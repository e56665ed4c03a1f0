package match

import (
	"strings"
	"unicode"
)

// initialisms are rendered fully upper-case by GoName.
var initialisms = map[string]bool{
	"id":   true,
	"cid":  true,
	"uuid": true,
	"json": true,
	"url":  true,
	"http": true,
	"ip":   true,
}

// Words splits an identifier into lower-case words at separators (_ - and
// space) and at case boundaries. "client_id", "clientID" and "ClientId" all
// give [client id]; an upper-case run ends before its last letter when a
// lower-case letter follows, so "XMLParser" gives [xml parser].
func Words(s string) []string {
	runes := []rune(s)

	var words []string

	start := -1
	flush := func(end int) {
		if start >= 0 {
			words = append(words, strings.ToLower(string(runes[start:end])))
			start = -1
		}
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush(i)
			continue
		}

		if start >= 0 && caseBoundary(runes, i) {
			flush(i)
		}

		if start < 0 {
			start = i
		}
	}

	flush(len(runes))

	return words
}

// caseBoundary reports whether a word starts at runes[i]; i > 0.
func caseBoundary(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// NormalizeIdent folds an identifier for fuzzy comparison: "client_id",
// "ClientID" and "clientId" all become "clientid".
func NormalizeIdent(s string) string {
	return strings.Join(Words(s), "")
}

// GoName converts a field name such as "client_id" to an exported Go name
// ("ClientID"). Common initialisms are upper-cased.
func GoName(s string) string {
	var b strings.Builder

	for _, w := range Words(s) {
		if initialisms[w] {
			b.WriteString(strings.ToUpper(w))
			continue
		}

		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	return b.String()
}

// LocalName converts a field name to an unexported Go name usable as a
// parameter ("client_id" -> "clientID").
func LocalName(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	return words[0] + GoName(strings.Join(words[1:], "_"))
}
