// Package outline extracts in-page navigation from rendered HTML and
// tracks which heading is currently active.
package outline

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Heading is one table-of-contents entry.
// Level is the heading depth: 2, 3, or 4. Level-1 headings are article
// titles and never appear in an outline.
type Heading struct {
	ID    string
	Text  string
	Level int
}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Slugify derives a heading id from its text: lowercased, whitespace runs
// replaced with hyphens.
func Slugify(text string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), "-")
}

// Extract returns the h2-h4 headings of htmlContent in document order.
// Each heading keeps its existing id attribute when present, otherwise
// one is derived from its text.
func Extract(htmlContent string) ([]Heading, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var headings []Heading
	doc.Find("h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		level := headingLevel(goquery.NodeName(s))
		if level == 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		id, ok := s.Attr("id")
		if !ok || id == "" {
			id = Slugify(text)
		}
		headings = append(headings, Heading{ID: id, Text: text, Level: level})
	})
	return headings, nil
}

func headingLevel(tag string) int {
	switch tag {
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	}
	return 0
}
