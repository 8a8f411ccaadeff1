// Package facets parses GitHub issue-form bodies into named fields.
//
// An issue form renders every answered field as a heading followed by the
// answer:
//
//	### Date
//
//	2025-12-01
//
//	### Topics
//
//	- [x] Go
//	- [ ] Rust
//
// Each section becomes one facet keyed by the slug of its heading. A facet
// always carries title, heading, content (non-empty lines) and text (the
// trimmed answer). Recognised answers add a typed member: "date"
// (YYYY-MM-DD), "time" (HH:MM, 24 hour) or "list" (task list items).
package facets

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
)

// noResponse is what GitHub writes for an unanswered optional field.
const noResponse = "_No response_"

// Ensure Parser implements the interface.
var _ driven.FacetParser = (*Parser)(nil)

// Parser is a FacetParser for issue-form bodies.
type Parser struct {
	md goldmark.Markdown
}

// New creates an issue-form parser.
func New() *Parser {
	return &Parser{md: goldmark.New()}
}

// section is the byte range of one heading's answer.
type section struct {
	title string
	level int
	start int
	end   int
}

// Parse returns the facets of body. It never fails on content; only a
// cancelled context is reported.
func (p *Parser) Parse(ctx context.Context, body *string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	facets := map[string]any{}
	if body == nil || strings.TrimSpace(*body) == "" {
		return facets, nil
	}

	src := []byte(normaliseNewlines(*body))
	for _, s := range p.sections(src) {
		key := slugify(s.title)
		if key == "" {
			continue
		}
		facets[key] = buildFacet(s, strings.TrimSpace(string(src[s.start:s.end])))
	}
	return facets, nil
}

// sections locates top-level headings and the answer that follows each.
func (p *Parser) sections(src []byte) []section {
	doc := p.md.Parser().Parse(text.NewReader(src))

	var out []section
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			continue
		}

		lines := h.Lines()
		var title strings.Builder
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			title.Write(seg.Value(src))
		}

		first := lines.At(0)
		last := lines.At(lines.Len() - 1)
		lineStart := lineStartOf(src, first.Start)
		answerStart := lineEndOf(src, last.Stop)

		if len(out) > 0 {
			out[len(out)-1].end = lineStart
		}
		out = append(out, section{
			title: strings.TrimSpace(title.String()),
			level: h.Level,
			start: answerStart,
			end:   len(src),
		})
	}
	return out
}

func lineStartOf(src []byte, pos int) int {
	for pos > 0 && src[pos-1] != '\n' {
		pos--
	}
	return pos
}

func lineEndOf(src []byte, pos int) int {
	for pos < len(src) && src[pos] != '\n' {
		pos++
	}
	return pos
}

func normaliseNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

var (
	taskItem  = regexp.MustCompile(`^[-*+]\s+\[([ xX])\]\s*(.*)$`)
	clockTime = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s*([AaPp][Mm]))?$`)
	nonSlug   = regexp.MustCompile(`[^a-z0-9]+`)
)

func buildFacet(s section, answer string) map[string]any {
	if answer == noResponse {
		answer = ""
	}

	content := []any{}
	for _, line := range strings.Split(answer, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			content = append(content, line)
		}
	}

	facet := map[string]any{
		"title":   s.title,
		"heading": s.level,
		"content": content,
		"text":    answer,
	}

	if list, ok := parseTaskList(content); ok {
		facet["list"] = list
		return facet
	}
	if len(content) != 1 {
		return facet
	}

	value := content[0].(string)
	if date, ok := parseDate(value); ok {
		facet["date"] = date
	} else if clock, ok := parseTime(value); ok {
		facet["time"] = clock
	}
	return facet
}

// parseTaskList reads "- [x] item" lines. All lines must be task items.
func parseTaskList(content []any) ([]any, bool) {
	if len(content) == 0 {
		return nil, false
	}
	list := make([]any, 0, len(content))
	for _, c := range content {
		m := taskItem.FindStringSubmatch(c.(string))
		if m == nil {
			return nil, false
		}
		list = append(list, map[string]any{
			"checked": m[1] != " ",
			"text":    strings.TrimSpace(m[2]),
		})
	}
	return list, true
}

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006/01/02",
	"02.01.2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// parseDate normalises a calendar date to YYYY-MM-DD.
func parseDate(value string) (string, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(time.DateOnly), true
		}
	}
	return "", false
}

// parseTime normalises a clock time to 24 hour HH:MM.
func parseTime(value string) (string, bool) {
	m := clockTime.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}
	layout := "15:04"
	candidate := m[1] + ":" + m[2]
	if m[3] != "" {
		layout = "3:04PM"
		candidate += strings.ToUpper(m[3])
	}
	t, err := time.Parse(layout, candidate)
	if err != nil {
		return "", false
	}
	return t.Format("15:04"), true
}

// slugify lowercases s and joins its alphanumeric runs with dashes.
func slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
