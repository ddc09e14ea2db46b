package review

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFindingsStructuredBlock(t *testing.T) {

	raw := `SEVERITY: high
FILE: internal/auth/token.go
LINE: 42
ISSUE: token compared with ==
SUGGESTION: use hmac.Equal`

	findings := ParseFindings(CategorySecurity, raw)

	require.Len(t, findings, 1)
	f := findings[0]
	require.Equal(t, CategorySecurity, f.Category)
	require.Equal(t, SeverityHigh, f.Severity)
	require.Equal(t, "internal/auth/token.go", f.File)
	require.Equal(t, 42, f.Line)
	require.Equal(t, "token compared with ==", f.Message)
	require.Equal(t, "use hmac.Equal", f.Suggestion)
}

func TestParseFindingsMultipleBlocks(t *testing.T) {

	raw := `SEVERITY: medium
ISSUE: first
---
SEVERITY: low
FILE: a.go
ISSUE: second`

	findings := ParseFindings(CategoryLogic, raw)

	require.Len(t, findings, 2)
	require.Equal(t, "first", findings[0].Message)
	require.Equal(t, "second", findings[1].Message)
	require.Equal(t, CategoryLogic, findings[1].Category)
}

func TestParseFindingsNoIssues(t *testing.T) {
	require.Nil(t, ParseFindings(CategoryLogic, "NO_ISSUES"))
	require.Nil(t, ParseFindings(CategoryLogic, "  no_issues\n"))
	require.Nil(t, ParseFindings(CategoryLogic, ""))
}

func TestParseFindingsUnstructuredBecomesInfoFinding(t *testing.T) {

	raw := "The diff looks mostly fine, though I would double check the loop bounds."

	findings := ParseFindings(CategoryReadability, raw)

	require.Len(t, findings, 1)
	require.Equal(t, SeverityInfo, findings[0].Severity)
	require.Equal(t, raw, findings[0].Message)
}

func TestParseFindingsKeepsUnparsableRemainder(t *testing.T) {

	raw := `Here is my analysis:
SEVERITY: low
ISSUE: shadowed variable
---
And some closing remarks the format does not allow.`

	findings := ParseFindings(CategoryLogic, raw)

	require.Len(t, findings, 2)
	require.Equal(t, "shadowed variable", findings[0].Message)
	require.Equal(t, SeverityInfo, findings[1].Severity)
	require.Contains(t, findings[1].Message, "closing remarks")
	require.Contains(t, findings[1].Message, "Here is my analysis")
}

func TestParseFindingsUnknownSeverityDefaultsToInfo(t *testing.T) {

	raw := `SEVERITY: catastrophic
ISSUE: something`

	findings := ParseFindings(CategoryPerformance, raw)

	require.Len(t, findings, 1)
	require.Equal(t, SeverityInfo, findings[0].Severity)
}

func TestParseFindingsBlockWithoutIssueIsRemainder(t *testing.T) {

	raw := `SEVERITY: high
FILE: a.go`

	findings := ParseFindings(CategorySecurity, raw)

	require.Len(t, findings, 1)
	require.Equal(t, SeverityInfo, findings[0].Severity)
	require.Contains(t, findings[0].Message, "SEVERITY: high")
}
