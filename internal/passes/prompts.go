package passes

import (
	"fmt"
	"strings"

	"prai/internal/diff"
	"prai/internal/review"
)

// Output contract shared by every pass. Keeping it identical across
// categories means one parser handles all four.
const outputFormat = `Report each issue as a block of fields, blocks separated by a line containing only "---":

SEVERITY: critical | high | medium | low | info
FILE: <path from the diff>
LINE: <line number in the new file>
ISSUE: <one-sentence description>
SUGGESTION: <concrete fix, optional>

If there is nothing to report, respond with exactly: NO_ISSUES
Do not add any other text.`

var systemPrompts = map[review.Category]string{

	review.CategoryLogic: `You are a senior software engineer reviewing a pull request for logical correctness.

Focus on:
1. Logical errors and incorrect implementations
2. Potential runtime errors and unhandled failure paths
3. Edge cases and boundary conditions
4. Nil/undefined handling issues
5. Incorrect algorithm implementations
6. Race conditions or concurrency issues

` + outputFormat,

	review.CategoryReadability: `You are a code quality specialist reviewing a pull request for readability and maintainability.

Focus on:
1. Naming of variables, functions and types
2. Code organization and structure
3. Duplication and DRY violations
4. Comment and documentation quality
5. Complexity and cognitive load
6. Adherence to the language's conventions

` + outputFormat,

	review.CategoryPerformance: `You are a performance engineer reviewing a pull request for efficiency.

Focus on:
1. Algorithmic complexity, time and space
2. Inefficient operations and bottlenecks
3. Database query patterns
4. Memory and resource management
5. Unnecessary computation
6. Caching opportunities

` + outputFormat,

	review.CategorySecurity: `You are a security auditor reviewing a pull request for vulnerabilities.

Focus on:
1. SQL/NoSQL injection
2. Cross-site scripting and CSRF
3. Authentication and authorization flaws
4. Input validation and sanitization
5. Hardcoded secrets and sensitive data exposure
6. Insecure cryptography
7. Path traversal and file inclusion

` + outputFormat,
}

// userPrompt renders the PR metadata plus the serialized diff. The
// diff serialization is deterministic, so identical input always
// produces an identical prompt.
func userPrompt(m *diff.Model, prctx review.PRContext, maxLines int) string {

	var b strings.Builder

	b.WriteString("# Pull Request Information\n\n")
	fmt.Fprintf(&b, "Title: %s\n", prctx.Title)
	fmt.Fprintf(&b, "Author: %s\n", prctx.Author)
	fmt.Fprintf(&b, "Number: #%d\n\n", prctx.Number)

	desc := prctx.Description
	if desc == "" {
		desc = "No description provided"
	}
	fmt.Fprintf(&b, "Description:\n%s\n\n", desc)

	fmt.Fprintf(&b, "Statistics: %d files changed, +%d / -%d\n\n",
		prctx.ChangedFiles, prctx.Additions, prctx.Deletions)

	b.WriteString("---\n\n")
	b.WriteString(m.PromptContext(maxLines))

	return b.String()
}
