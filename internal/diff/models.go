package diff

type ChangeKind string

const (
	Added    ChangeKind = "added"
	Modified ChangeKind = "modified"
	Deleted  ChangeKind = "deleted"
	Renamed  ChangeKind = "renamed"
)

type LineKind string

const (
	LineContext LineKind = "context"
	LineAdded   LineKind = "added"
	LineRemoved LineKind = "removed"
)

type Line struct {
	Kind      LineKind
	Text      string
	OldNumber int
	NewNumber int
}

type Hunk struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Lines    []Line
}

type FileChange struct {
	Path      string
	OldPath   string
	Kind      ChangeKind
	Language  string
	Additions int
	Deletions int
	Hunks     []Hunk
}

// Model is the parsed representation of one pull request's changes.
// It is built once per review attempt and never mutated afterward.
type Model struct {
	Files          []FileChange
	TotalAdditions int
	TotalDeletions int
	Warnings       []string
}

// FilePayload is one entry of the GitHub "list pull request files" response.
type FilePayload struct {
	Filename         string `json:"filename"`
	PreviousFilename string `json:"previous_filename"`
	Status           string `json:"status"`
	Patch            string `json:"patch"`
	Additions        int    `json:"additions"`
	Deletions        int    `json:"deletions"`
}

// Metadata carries the counts the PR object declares, used as a
// corruption signal against what was actually parsed.
type Metadata struct {
	ChangedFiles int
	Additions    int
	Deletions    int
}
