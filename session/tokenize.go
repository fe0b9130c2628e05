package session

import "strings"

// Tokenize splits a command line on whitespace. A piece holding an odd
// number of double quotes opens (or closes) a quoted token; pieces in
// between are joined with single spaces and the quotes are removed.
func Tokenize(line string) []string {
	var (
		out     []string
		joined  []string
		quoting bool
	)
	flush := func() {
		if len(joined) == 0 {
			return
		}
		out = append(out, strings.ReplaceAll(strings.Join(joined, " "), `"`, ""))
		joined = joined[:0]
	}
	for _, piece := range strings.Fields(line) {
		if strings.Count(piece, `"`)%2 == 1 {
			quoting = !quoting
		}
		joined = append(joined, piece)
		if !quoting {
			flush()
		}
	}
	flush()
	return out
}
