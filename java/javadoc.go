package java

import (
	"regexp"
	"strings"
)

// Comment cleanup applied before javadoc rendering. The schema's comments
// are markdown written for the documentation site; code fences and
// example-introducing lines don't survive the trip into javadoc.
var (
	reCodeFence   = regexp.MustCompile("(?s)\n```.*?```\n")
	reAnExample   = regexp.MustCompile(`\nAn example of[^\n]+\n`)
	reThisExample = regexp.MustCompile(`\nThis example [^\n]+\n`)
	reExamples    = regexp.MustCompile(`\nExamples:\n`)
	reBlockQuote  = regexp.MustCompile(`\n> `)
	reParagraph   = regexp.MustCompile(`\n\n`)
	reCodeSpan    = regexp.MustCompile("`([^`]+)`")
)

// formatComment rewrites a schema comment for javadoc: code snippets and
// example lead-ins are dropped, block quotes unwrapped, and paragraph breaks
// get an explicit <p>.
func formatComment(text string) string {
	text = reCodeFence.ReplaceAllString(text, "")
	text = reAnExample.ReplaceAllString(text, "\n")
	text = reThisExample.ReplaceAllString(text, "\n")
	text = reExamples.ReplaceAllString(text, "\n")
	text = reBlockQuote.ReplaceAllString(text, "\n")
	return reParagraph.ReplaceAllString(text, "\n\n<p> ")
}

// writeJavadoc appends a javadoc block for text at the given offset. Inline
// code spans become {@code}, close-comment sequences are escaped, and NOTE
// call-outs are emphasized.
func writeJavadoc(out *[]string, offset, text string) {
	if text == "" {
		return
	}
	*out = append(*out, offset+"/**")
	for _, line := range strings.Split(text, "\n") {
		l := offset + " *"
		if line != "" {
			l += " " + line
		}
		l = strings.ReplaceAll(l, "*/", `*\/`)
		l = strings.ReplaceAll(l, "NOTE: ", "<strong>NOTE:</strong> ")
		l = reCodeSpan.ReplaceAllString(l, "{@code $1}")
		*out = append(*out, l)
	}
	*out = append(*out, offset+" */")
}

// methodJavadoc composes the javadoc for one signature: the method comment,
// then @param tags for the signature's parameters, then @return.
func methodJavadoc(out *[]string, offset string, m *Method, params []*Param) {
	sections := []string{formatComment(m.Comment)}
	blank := false
	for _, p := range params {
		if p.Comment == "" {
			continue
		}
		if !blank {
			sections = append(sections, "")
			blank = true
		}
		sections = append(sections, "@param "+p.Name+" "+formatComment(p.Comment))
	}
	if m.ReturnComment != "" {
		if !blank {
			sections = append(sections, "")
		}
		sections = append(sections, "@return "+formatComment(m.ReturnComment))
	}
	writeJavadoc(out, offset, strings.Join(sections, "\n"))
}
