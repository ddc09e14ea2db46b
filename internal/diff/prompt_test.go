package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPromptContextIsDeterministic(t *testing.T) {

	m, err := Build([]FilePayload{
		{Filename: "main.go", Status: "modified", Patch: samplePatch, Additions: 3, Deletions: 1},
		{Filename: "app/util.py", Status: "added", Patch: "@@ -0,0 +1,2 @@\n+def f():\n+    pass\n"},
	}, Metadata{ChangedFiles: 2})
	require.NoError(t, err)

	a := m.PromptContext(400)
	b := m.PromptContext(400)
	require.Equal(t, a, b)

	require.Contains(t, a, "Files changed: 2")
	require.Contains(t, a, "Languages: Go, Python")
	require.Contains(t, a, "### 1. main.go")
	require.Contains(t, a, "### 2. app/util.py")
	require.Contains(t, a, "```diff")
	require.Contains(t, a, "+func add(a, b, c int) int {")
}

func TestPromptContextTruncatesLongFiles(t *testing.T) {

	var patch strings.Builder
	patch.WriteString("@@ -0,0 +1,50 @@\n")
	for i := 0; i < 50; i++ {
		patch.WriteString("+line\n")
	}

	m, err := Build([]FilePayload{
		{Filename: "big.go", Status: "added", Patch: patch.String()},
	}, Metadata{ChangedFiles: 1})
	require.NoError(t, err)

	out := m.PromptContext(10)

	require.Contains(t, out, "... (truncated, 40 more lines)")
	require.Equal(t, 10, strings.Count(out, "+line"))
}

func TestPromptContextCapIsPerFile(t *testing.T) {

	patch := "@@ -0,0 +1,5 @@\n+a\n+b\n+c\n+d\n+e\n"

	m, err := Build([]FilePayload{
		{Filename: "one.go", Status: "added", Patch: patch},
		{Filename: "two.go", Status: "added", Patch: patch},
	}, Metadata{ChangedFiles: 2})
	require.NoError(t, err)

	out := m.PromptContext(5)

	require.NotContains(t, out, "truncated")
	require.Contains(t, out, "### 2. two.go")
}

func TestPromptContextHandlesMissingPatch(t *testing.T) {

	m, err := Build([]FilePayload{
		{Filename: "logo.png", Status: "added"},
	}, Metadata{ChangedFiles: 1})
	require.NoError(t, err)

	require.Contains(t, m.PromptContext(400), "(no patch available)")
}
