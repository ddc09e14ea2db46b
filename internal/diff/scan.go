package diff

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

var hunkRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// scanHunks is the lenient fallback used when the strict parser rejects
// a patch. It keeps whatever hunks it can recognize and drops the rest.
func scanHunks(patch string) []Hunk {

	var hunks []Hunk
	var cur *Hunk
	var oldN, newN int

	scanner := bufio.NewScanner(strings.NewReader(patch))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		raw := scanner.Text()

		if m := hunkRe.FindStringSubmatch(raw); m != nil {
			if cur != nil {
				hunks = append(hunks, *cur)
			}

			oldStart, _ := strconv.Atoi(m[1])
			newStart, _ := strconv.Atoi(m[3])
			oldLines, _ := strconv.Atoi(m[2])
			newLines, _ := strconv.Atoi(m[4])

			cur = &Hunk{
				OldStart: oldStart,
				OldLines: oldLines,
				NewStart: newStart,
				NewLines: newLines,
			}
			oldN = oldStart
			newN = newStart
			continue
		}

		if cur == nil {
			continue
		}

		if l, ok := numberLine(raw, &oldN, &newN); ok {
			cur.Lines = append(cur.Lines, l)
		}
	}

	if cur != nil {
		hunks = append(hunks, *cur)
	}

	return hunks
}
