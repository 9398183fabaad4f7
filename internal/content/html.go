package content

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var (
	checkboxType = regexp.MustCompile(`^checkbox$`)
	emptyAttr    = regexp.MustCompile(`^$`)
)

// SanitizeHTML strips tags and attributes not allowed in course text.
func SanitizeHTML() TransformerFunc {
	policy := sanitizer()
	return func(input []byte) ([]byte, error) {
		return policy.SanitizeBytes(input), nil
	}
}

// sanitizer is a reduction of [bluemonday.UGCPolicy] to what course
// descriptions and material lists render:
//
//   - Links get target _blank and noreferrer
//   - No images (to avoid hot-linking)
//   - Checkbox inputs only, disabled, for task lists
func sanitizer() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()

	policy.AllowStandardURLs()
	policy.AllowAttrs("href").OnElements("a")
	policy.RequireNoReferrerOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	policy.AllowElements(
		"b", "blockquote", "br", "code", "del", "em",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"hr", "i", "li", "ol", "p", "pre", "s", "strong", "ul",
		"table", "thead", "tbody", "tr", "th", "td",
	)
	policy.AllowAttrs("align").Matching(bluemonday.Direction).OnElements("th", "td")

	policy.AllowAttrs("type").Matching(checkboxType).OnElements("input")
	policy.AllowAttrs("checked", "disabled").Matching(emptyAttr).OnElements("input")

	return policy
}
