// Package profanity rejects submissions containing banned words. Matching is
// a single case-insensitive whole-word alternation; there is no stemming or
// obfuscation handling.
package profanity

import (
	"regexp"
	"strings"
)

// Result is the outcome of a profanity check.
type Result struct {
	HasProfanity bool     `json:"has_profanity"`
	Words        []string `json:"words"`
}

// bannedWords is the static server-side list. The client keeps its own copy
// for pre-submit hints; this one is authoritative.
var bannedWords = []string{
	"fuck", "fucking", "fucker", "shit", "bitch", "asshole", "bastard",
	"cunt", "dick", "prick", "whore", "slut", "idiot", "moron", "stupid",
	"dumbass", "jackass", "retard", "nigger", "faggot",
}

// Filter matches text against the banned word list.
type Filter struct {
	re *regexp.Regexp
}

// NewFilter compiles the word-boundary alternation from the static list.
func NewFilter() *Filter {
	escaped := make([]string, len(bannedWords))
	for i, w := range bannedWords {
		escaped[i] = regexp.QuoteMeta(w)
	}
	return &Filter{
		re: regexp.MustCompile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`),
	}
}

// Check returns the de-duplicated, lower-cased set of banned words found in text.
func (f *Filter) Check(text string) Result {
	matches := f.re.FindAllString(text, -1)
	if len(matches) == 0 {
		return Result{Words: []string{}}
	}

	seen := make(map[string]bool, len(matches))
	words := make([]string, 0, len(matches))
	for _, m := range matches {
		lower := strings.ToLower(m)
		if !seen[lower] {
			seen[lower] = true
			words = append(words, lower)
		}
	}
	return Result{HasProfanity: true, Words: words}
}
