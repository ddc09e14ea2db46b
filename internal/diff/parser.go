package diff

import (
	"fmt"
	"strings"

	godiff "github.com/sourcegraph/go-diff/diff"
)

// Build constructs a Model from the per-file patches GitHub returns.
// Each patch is parsed with go-diff first; patches it rejects go
// through a lenient line scanner instead, with a warning recorded.
func Build(files []FilePayload, meta Metadata) (*Model, error) {

	m := &Model{}

	patched := 0
	failed := 0

	for _, f := range files {

		fc := FileChange{
			Path:      f.Filename,
			OldPath:   f.PreviousFilename,
			Kind:      changeKind(f.Status),
			Language:  DetectLanguage(f.Filename),
			Additions: f.Additions,
			Deletions: f.Deletions,
		}

		m.TotalAdditions += f.Additions
		m.TotalDeletions += f.Deletions

		// Binary or oversized files come back without a patch.
		if f.Patch == "" {
			m.Files = append(m.Files, fc)
			continue
		}
		patched++

		hunks, err := parseHunks(f.Patch)
		if err != nil {
			hunks = scanHunks(f.Patch)
			if len(hunks) == 0 {
				failed++
				m.Warnings = append(m.Warnings,
					fmt.Sprintf("unparsable patch for %s: %v", f.Filename, err))
				m.Files = append(m.Files, fc)
				continue
			}
			m.Warnings = append(m.Warnings,
				fmt.Sprintf("lenient parse for %s: %v", f.Filename, err))
		}

		fc.Hunks = hunks
		m.Files = append(m.Files, fc)
	}

	if patched > 0 && failed == patched {
		return nil, &MalformedDiffError{Reason: "no patch could be parsed"}
	}

	if meta.ChangedFiles > 0 && meta.ChangedFiles != len(files) {
		m.Warnings = append(m.Warnings, fmt.Sprintf(
			"metadata declares %d changed files, payload has %d",
			meta.ChangedFiles, len(files)))
	}

	return m, nil
}

func parseHunks(patch string) ([]Hunk, error) {

	parsed, err := godiff.ParseHunks([]byte(patch))
	if err != nil {
		return nil, err
	}

	var hunks []Hunk
	for _, h := range parsed {

		hunk := Hunk{
			OldStart: int(h.OrigStartLine),
			OldLines: int(h.OrigLines),
			NewStart: int(h.NewStartLine),
			NewLines: int(h.NewLines),
		}

		oldN := hunk.OldStart
		newN := hunk.NewStart

		for _, raw := range strings.Split(strings.TrimSuffix(string(h.Body), "\n"), "\n") {
			l, ok := numberLine(raw, &oldN, &newN)
			if ok {
				hunk.Lines = append(hunk.Lines, l)
			}
		}

		hunks = append(hunks, hunk)
	}

	return hunks, nil
}

func numberLine(raw string, oldN, newN *int) (Line, bool) {

	if strings.HasPrefix(raw, `\ No newline`) {
		return Line{}, false
	}

	if len(raw) == 0 {
		l := Line{Kind: LineContext, OldNumber: *oldN, NewNumber: *newN}
		*oldN++
		*newN++
		return l, true
	}

	switch raw[0] {

	case '+':
		l := Line{Kind: LineAdded, Text: raw[1:], NewNumber: *newN}
		*newN++
		return l, true

	case '-':
		l := Line{Kind: LineRemoved, Text: raw[1:], OldNumber: *oldN}
		*oldN++
		return l, true

	default:
		l := Line{Kind: LineContext, Text: raw[1:], OldNumber: *oldN, NewNumber: *newN}
		*oldN++
		*newN++
		return l, true
	}
}

func changeKind(status string) ChangeKind {
	switch status {
	case "added":
		return Added
	case "removed", "deleted":
		return Deleted
	case "renamed":
		return Renamed
	default:
		return Modified
	}
}
