// Package corpus provides the static text resources that span-based
// generators draw from, plus their tokenization. Resources are embedded in
// the binary and read once; both the read and the tokenization are pure and
// deterministic, so a resource name always yields the same ordered tokens.
package corpus

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
)

// InTheYear2889 is the default corpus: Jules Verne's "In the Year 2889"
// (public domain).
const InTheYear2889 = "in_the_year_2889.txt"

//go:embed data
var dataFS embed.FS

var wordRE = regexp.MustCompile(`[0-9A-Za-z]+`)

// Read returns the raw text of the named embedded resource.
func Read(name string) (string, error) {
	b, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return "", fmt.Errorf("read corpus %q: %w", name, err)
	}
	return string(b), nil
}

// Words tokenizes text into its alphanumeric runs, in order of appearance.
func Words(text string) []string {
	return wordRE.FindAllString(text, -1)
}

// Sentences splits text on delim and trims surrounding whitespace,
// dropping empty pieces.
func Sentences(text, delim string) []string {
	var out []string
	for _, s := range strings.Split(text, delim) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
