package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	fontFamilyPattern = regexp.MustCompile(`(?i)font-family\s*:\s*([^;}"]+)`)
	structureTags     = []string{"html", "head", "body"}
)

// CheckATS inspects rendered HTML for constructs that break automated text
// extraction. An empty result means the document is compliant.
func CheckATS(html string) ([]types.Violation, error) {
	violations := make([]types.Violation, 0)

	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(html)), "<!doctype html") {
		violations = append(violations, types.Violation{
			Type:     types.ViolationMissingDoctype,
			Severity: "error",
			Details:  "document does not start with a doctype declaration",
		})
	}

	lower := strings.ToLower(html)
	for _, tag := range structureTags {
		if !strings.Contains(lower, "<"+tag) || !strings.Contains(lower, "</"+tag+">") {
			violations = append(violations, types.Violation{
				Type:     types.ViolationMissingStructure,
				Severity: "error",
				Details:  fmt.Sprintf("document is missing <%s> open or close tag", tag),
				Element:  tag,
			})
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	if strings.TrimSpace(doc.Find("head title").First().Text()) == "" {
		violations = append(violations, types.Violation{
			Type:     types.ViolationMissingTitle,
			Severity: "error",
			Details:  "document has no non-empty title element",
			Element:  "title",
		})
	}

	for _, tag := range []string{"table", "thead", "tbody", "tr", "td", "th"} {
		if n := doc.Find(tag).Length(); n > 0 {
			violations = append(violations, types.Violation{
				Type:     types.ViolationTableLayout,
				Severity: "error",
				Details:  fmt.Sprintf("document contains %d <%s> element(s)", n, tag),
				Element:  tag,
				Count:    intPtr(n),
			})
		}
	}

	if n := doc.Find("img, picture").Length(); n > 0 {
		violations = append(violations, types.Violation{
			Type:     types.ViolationImage,
			Severity: "error",
			Details:  fmt.Sprintf("document contains %d image element(s)", n),
			Element:  "img",
			Count:    intPtr(n),
		})
	}

	if n := doc.Find("link[rel=stylesheet], script[src]").Length(); n > 0 {
		violations = append(violations, types.Violation{
			Type:     types.ViolationExternalResource,
			Severity: "error",
			Details:  fmt.Sprintf("document references %d external stylesheet(s) or script(s)", n),
			Count:    intPtr(n),
		})
	}

	families := collectFontFamilies(doc)
	if len(families) != 1 {
		violations = append(violations, types.Violation{
			Type:     types.ViolationFontFamily,
			Severity: "error",
			Details:  fmt.Sprintf("document declares %d font-family value(s), expected exactly 1", len(families)),
			Count:    intPtr(len(families)),
		})
	}

	return violations, nil
}

// collectFontFamilies returns every font-family declaration found in style
// blocks and inline style attributes, in document order.
func collectFontFamilies(doc *goquery.Document) []string {
	var families []string

	collect := func(css string) {
		for _, m := range fontFamilyPattern.FindAllStringSubmatch(css, -1) {
			families = append(families, strings.TrimSpace(m[1]))
		}
	}

	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		collect(s.Text())
	})
	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		if css, ok := s.Attr("style"); ok {
			collect(css)
		}
	})

	return families
}

func intPtr(i int) *int {
	return &i
}
