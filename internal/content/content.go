// Package content renders user-authored course text for display.
package content

var markdownPipeline = Chain(MarkdownToHTML(), SanitizeHTML())

// RenderMarkdown converts CommonMark input into sanitized HTML.
func RenderMarkdown(input string) (string, error) {
	out, err := markdownPipeline([]byte(input))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
