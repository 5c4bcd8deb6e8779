package formatter

import "strings"

// StyleMarkdown applies terminal styling to the dossier's markdown: colored
// headers, bold for **spans**, dim for italics-only lines. The markdown text
// itself is left intact so piped output stays valid.
func StyleMarkdown(md string) string {
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "#"):
			lines[i] = StyleHeader.Render(line)
		case strings.HasPrefix(line, "_") && strings.HasSuffix(line, "_"):
			lines[i] = Dim(line)
		case strings.HasPrefix(line, "|"):
			lines[i] = StyleBlue.Render(line)
		default:
			lines[i] = styleBoldSpans(line)
		}
	}
	return strings.Join(lines, "\n")
}

func styleBoldSpans(line string) string {
	var b strings.Builder
	rest := line
	for {
		start := strings.Index(rest, "**")
		if start < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end := strings.Index(rest[start+2:], "**")
		if end < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:start])
		b.WriteString(Bold(rest[start : start+end+4]))
		rest = rest[start+end+4:]
	}
}
