package provider

import (
	"strconv"
	"strings"
)

// systemPrompt is sent alongside the rendered template on backends that
// support a separate system role.
const systemPrompt = "You are a professional document summarization assistant. Extract the core information and produce a concise, compact, readable summary. Do not use markdown formatting, output plain text only."

// renderPrompt substitutes the {max_length} and {content} placeholders.
func renderPrompt(template string, maxLength int, content string) string {
	prompt := strings.ReplaceAll(template, "{max_length}", strconv.Itoa(maxLength))
	return strings.ReplaceAll(prompt, "{content}", content)
}
