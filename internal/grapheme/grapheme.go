// Package grapheme wraps rivo/uniseg and go-runewidth for the cluster and
// cell-width queries the buffer and editor need.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Join concatenates clusters back into a string.
func Join(clusters []string) string {
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return clusters[0]
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the terminal cell width of a single cluster.
// Control clusters (including tab) report 0; callers expand tabs themselves.
func Width(cluster string) int {
	if cluster == "" {
		return 0
	}
	if w := runewidth.StringWidth(cluster); w > 0 {
		return w
	}
	// runewidth reports 0 for some emoji sequences uniseg measures.
	return max(uniseg.StringWidth(cluster), 0)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
