package github

import "strings"

var skipSuffixes = []string{
	".lock", ".sum", ".min.js", ".map",
	".png", ".jpg", ".gif", ".svg", ".ico",
	".pb.go", "_generated.go",
}

// IsReviewable filters out files no analysis pass can say anything
// useful about. Everything else goes through; the passes see config
// and docs too, the security pass in particular wants them.
func IsReviewable(filename string) bool {
	for _, s := range skipSuffixes {
		if strings.HasSuffix(filename, s) {
			return false
		}
	}
	return true
}
