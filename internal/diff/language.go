package diff

import "strings"

var languageByExt = map[string]string{
	".py":    "Python",
	".js":    "JavaScript",
	".ts":    "TypeScript",
	".jsx":   "React JSX",
	".tsx":   "React TSX",
	".java":  "Java",
	".cpp":   "C++",
	".c":     "C",
	".cs":    "C#",
	".go":    "Go",
	".rs":    "Rust",
	".rb":    "Ruby",
	".php":   "PHP",
	".swift": "Swift",
	".kt":    "Kotlin",
	".scala": "Scala",
	".sql":   "SQL",
	".html":  "HTML",
	".css":   "CSS",
	".scss":  "SCSS",
	".yaml":  "YAML",
	".yml":   "YAML",
	".sh":    "Shell",
}

func DetectLanguage(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return languageByExt[filename[idx:]]
}

// Languages returns the distinct languages in the model, in file order.
func (m *Model) Languages() []string {
	seen := map[string]bool{}
	var out []string
	for _, f := range m.Files {
		if f.Language == "" || seen[f.Language] {
			continue
		}
		seen[f.Language] = true
		out = append(out, f.Language)
	}
	return out
}
