package client

import (
	"regexp"
	"strings"
)

var (
	fenceOpenRe  = regexp.MustCompile("(?m)^```[a-zA-Z]*\\s*$")
	dyadTagRe    = regexp.MustCompile(`(?s)<dyad-[^>]*>|</dyad-[^>]*>`)
	specialToken = regexp.MustCompile(`<\|[a-z_]+\|>`)
)

// CleanGeneratedCode strips the chat artifacts models wrap around
// generated Move source: markdown code fences, special end-of-text
// tokens, and editor tool tags. The code itself is left untouched.
func CleanGeneratedCode(raw string) string {
	s := dyadTagRe.ReplaceAllString(raw, "")
	s = specialToken.ReplaceAllString(s, "")
	s = fenceOpenRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s) + "\n"
}
