package processor

import (
	"fmt"
	"regexp"
)

// frontMatterPattern matches the summary block this tool writes. Other
// front-matter shapes are deliberately left untouched.
var frontMatterPattern = regexp.MustCompile(`(?s)---\narticleGPT:.*?\n---\n\n?`)

// stripFrontMatter removes the first prior summary block, if any.
func stripFrontMatter(content string) string {
	loc := frontMatterPattern.FindStringIndex(content)
	if loc == nil {
		return content
	}
	return content[:loc[0]] + content[loc[1]:]
}

// composeFrontMatter prepends a fresh summary block to the content.
func composeFrontMatter(summary, content string) string {
	return fmt.Sprintf("---\narticleGPT: %s\nshow: true\n---\n\n%s", summary, content)
}
