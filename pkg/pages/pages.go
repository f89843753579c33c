// Package pages parses the tagged plain-text story format produced by the
// text providers: a TITLE: line followed by PAGE n: lines. The input is
// untrusted model output, so parsing never fails; it degrades to a
// single-page result instead.
package pages

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

// Result is a parsed story body. Degraded marks that the tagged structure was
// missing and the single-page fallback was used; the shape guarantees hold
// either way.
type Result struct {
	Title    string
	Pages    []string
	Degraded bool
}

const fallbackTitle = "An Untitled Adventure"

var (
	pageRX     = regexp.MustCompile(`^PAGE \d+:`)
	markdownRX = regexp.MustCompile(`[*#\[\]]`)
)

// Parse extracts a title and ordered pages from raw provider output.
// Postcondition: the result always has a non-empty title and at least one
// page. Pages keep textual appearance order; the numeric tag is stripped, not
// trusted for ordering.
func Parse(raw string) Result {
	var res Result
	for _, line := range nonEmptyTrimmedLines(raw) {
		switch {
		case strings.HasPrefix(line, "TITLE:"):
			// last occurrence wins
			res.Title = strings.TrimSpace(strings.TrimPrefix(line, "TITLE:"))
		case pageRX.MatchString(line):
			tag := pageRX.FindString(line)
			res.Pages = append(res.Pages, strings.TrimSpace(strings.TrimPrefix(line, tag)))
		}
	}

	if res.Title == "" || len(res.Pages) == 0 {
		res = degraded(raw, res.Title)
		log.Warn("story output missing tagged structure, using single-page fallback")
	}

	if res.Title == "" || len(res.Pages) == 0 {
		panic("pages: parse produced an empty result")
	}
	return res
}

// degraded keeps a title already parsed from a tag line when one exists,
// otherwise treats the first line as the title. Everything else becomes one
// page, so free-form prose still yields a readable story.
func degraded(raw, title string) Result {
	res := Result{Title: title, Degraded: true}

	lines := nonEmptyTrimmedLines(raw)
	rest := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.HasPrefix(l, "TITLE:") {
			continue
		}
		rest = append(rest, l)
	}

	if res.Title == "" {
		if len(rest) == 0 {
			return Result{Title: fallbackTitle, Pages: []string{fallbackTitle}, Degraded: true}
		}
		res.Title = strings.TrimSpace(markdownRX.ReplaceAllString(rest[0], ""))
		if res.Title == "" {
			res.Title = fallbackTitle
		}
		rest = rest[1:]
	}

	body := strings.TrimSpace(strings.Join(rest, "\n"))
	if body == "" {
		body = res.Title
	}
	res.Pages = []string{body}
	return res
}

func nonEmptyTrimmedLines(text string) []string {
	rawLines := strings.Split(text, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, l := range rawLines {
		if trimmed := strings.TrimSpace(l); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
