package diff

import (
	"fmt"
	"strings"
)

// PromptContext renders the model into the text block the analysis
// passes embed in their prompts. Output is deterministic: files and
// hunks appear in model order, and per-file output is capped at
// maxLines diff lines so huge patches don't blow the prompt.
func (m *Model) PromptContext(maxLines int) string {

	var b strings.Builder

	b.WriteString("## Pull Request Changes Summary\n\n")
	fmt.Fprintf(&b, "Files changed: %d\n", len(m.Files))
	fmt.Fprintf(&b, "Additions: +%d\n", m.TotalAdditions)
	fmt.Fprintf(&b, "Deletions: -%d\n", m.TotalDeletions)

	if langs := m.Languages(); len(langs) > 0 {
		fmt.Fprintf(&b, "Languages: %s\n", strings.Join(langs, ", "))
	}

	b.WriteString("\n## File Changes\n")

	for i, f := range m.Files {

		fmt.Fprintf(&b, "\n### %d. %s\n", i+1, f.Path)
		fmt.Fprintf(&b, "Status: %s\n", f.Kind)
		if f.Kind == Renamed && f.OldPath != "" {
			fmt.Fprintf(&b, "Renamed from: %s\n", f.OldPath)
		}
		if f.Language != "" {
			fmt.Fprintf(&b, "Language: %s\n", f.Language)
		}
		fmt.Fprintf(&b, "Changes: +%d / -%d\n", f.Additions, f.Deletions)

		if len(f.Hunks) == 0 {
			b.WriteString("(no patch available)\n")
			continue
		}

		b.WriteString("```diff\n")

		written := 0
		truncated := 0

	hunks:
		for _, h := range f.Hunks {

			fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
				h.OldStart, h.OldLines, h.NewStart, h.NewLines)

			for _, l := range h.Lines {
				if written >= maxLines {
					truncated = countRemaining(f.Hunks, written)
					break hunks
				}
				b.WriteString(linePrefix(l.Kind))
				b.WriteString(l.Text)
				b.WriteByte('\n')
				written++
			}
		}

		if truncated > 0 {
			fmt.Fprintf(&b, "... (truncated, %d more lines)\n", truncated)
		}

		b.WriteString("```\n")
	}

	return b.String()
}

func linePrefix(k LineKind) string {
	switch k {
	case LineAdded:
		return "+"
	case LineRemoved:
		return "-"
	default:
		return " "
	}
}

func countRemaining(hunks []Hunk, written int) int {
	total := 0
	for _, h := range hunks {
		total += len(h.Lines)
	}
	return total - written
}
