package diff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePatch = `@@ -1,4 +1,5 @@
 package main
-func add(a, b int) int {
+func add(a, b, c int) int {
+	_ = c
 	return a + b
 }
@@ -10,2 +11,3 @@
 func main() {
+	println(add(1, 2, 3))
 }`

func TestBuildParsesHunksAndNumbersLines(t *testing.T) {

	m, err := Build([]FilePayload{
		{Filename: "main.go", Status: "modified", Patch: samplePatch, Additions: 3, Deletions: 1},
	}, Metadata{ChangedFiles: 1})

	require.NoError(t, err)
	require.Empty(t, m.Warnings)
	require.Len(t, m.Files, 1)

	f := m.Files[0]
	require.Equal(t, Modified, f.Kind)
	require.Equal(t, "Go", f.Language)
	require.Len(t, f.Hunks, 2)

	h := f.Hunks[0]
	require.Equal(t, 1, h.OldStart)
	require.Equal(t, 1, h.NewStart)

	// New-file line numbers never decrease within a hunk.
	last := 0
	for _, l := range h.Lines {
		if l.Kind == LineRemoved {
			continue
		}
		require.GreaterOrEqual(t, l.NewNumber, last)
		last = l.NewNumber
	}

	var added []Line
	for _, l := range h.Lines {
		if l.Kind == LineAdded {
			added = append(added, l)
		}
	}
	require.Len(t, added, 2)
	require.Equal(t, "func add(a, b, c int) int {", added[0].Text)
	require.Equal(t, 2, added[0].NewNumber)
	require.Equal(t, 3, added[1].NewNumber)

	require.Equal(t, 11, f.Hunks[1].NewStart)
	require.Equal(t, 3, m.TotalAdditions)
	require.Equal(t, 1, m.TotalDeletions)
}

func TestBuildKeepsGoingPastOneBadPatch(t *testing.T) {

	m, err := Build([]FilePayload{
		{Filename: "good.go", Status: "added", Patch: samplePatch},
		{Filename: "bad.go", Status: "modified", Patch: "this is not a diff at all"},
	}, Metadata{ChangedFiles: 2})

	require.NoError(t, err)
	require.Len(t, m.Files, 2)
	require.NotEmpty(t, m.Files[0].Hunks)
	require.Empty(t, m.Files[1].Hunks)
	require.NotEmpty(t, m.Warnings)
}

func TestBuildFailsWhenNothingParses(t *testing.T) {

	_, err := Build([]FilePayload{
		{Filename: "bad.go", Status: "modified", Patch: "garbage"},
	}, Metadata{})

	var malformed *MalformedDiffError
	require.ErrorAs(t, err, &malformed)
}

func TestBuildRecordsMetadataDivergence(t *testing.T) {

	m, err := Build([]FilePayload{
		{Filename: "main.go", Status: "modified", Patch: samplePatch},
	}, Metadata{ChangedFiles: 3})

	require.NoError(t, err)
	require.Len(t, m.Warnings, 1)
	require.Contains(t, m.Warnings[0], "metadata declares 3")
}

func TestBuildIncludesPatchlessFiles(t *testing.T) {

	m, err := Build([]FilePayload{
		{Filename: "logo.bin", Status: "added", Additions: 0, Deletions: 0},
	}, Metadata{ChangedFiles: 1})

	require.NoError(t, err)
	require.Len(t, m.Files, 1)
	require.Empty(t, m.Files[0].Hunks)
}

func TestBuildChangeKinds(t *testing.T) {

	m, err := Build([]FilePayload{
		{Filename: "a.go", Status: "added"},
		{Filename: "b.go", Status: "removed"},
		{Filename: "c.go", Status: "renamed", PreviousFilename: "old.go"},
		{Filename: "d.go", Status: "modified"},
	}, Metadata{ChangedFiles: 4})

	require.NoError(t, err)
	require.Equal(t, Added, m.Files[0].Kind)
	require.Equal(t, Deleted, m.Files[1].Kind)
	require.Equal(t, Renamed, m.Files[2].Kind)
	require.Equal(t, "old.go", m.Files[2].OldPath)
	require.Equal(t, Modified, m.Files[3].Kind)
}

func TestDetectLanguage(t *testing.T) {
	require.Equal(t, "Go", DetectLanguage("cmd/main.go"))
	require.Equal(t, "Python", DetectLanguage("app/main.py"))
	require.Equal(t, "", DetectLanguage("Makefile"))
}

func TestLenientScannerRecoversHunks(t *testing.T) {

	// A patch with a hunk header variant the strict parser may reject
	// still yields lines through the scanner.
	hunks := scanHunks("@@ -1,2 +1,2 @@ some trailing context\n context\n+added\n-removed\n")

	require.Len(t, hunks, 1)
	require.Len(t, hunks[0].Lines, 3)
	require.Equal(t, LineAdded, hunks[0].Lines[1].Kind)
	require.Equal(t, 2, hunks[0].Lines[1].NewNumber)
}
