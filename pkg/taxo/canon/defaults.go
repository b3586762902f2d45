package canon

// Curated synonym data for the blog's taxonomy. Extending either table is a
// data change only: add a row.

// DefaultCategories maps observed category synonyms to display names.
func DefaultCategories() map[string]string {
	return map[string]string{
		"web development":  "Web Development",
		"webdev":           "Web Development",
		"web-dev":          "Web Development",
		"frontend":         "Frontend",
		"front-end":        "Frontend",
		"backend":          "Backend",
		"back-end":         "Backend",
		"devops":           "DevOps",
		"machine learning": "Machine Learning",
		"ml":               "Machine Learning",
		"ai":               "Machine Learning",
		"databases":        "Databases",
		"database":         "Databases",
		"career":           "Career",
		"productivity":     "Productivity",
		"tutorials":        "Tutorials",
		"tutorial":         "Tutorials",
		"personal":         "Personal",
		"life":             "Personal",
	}
}

// DefaultTags maps observed tag synonyms to display names.
func DefaultTags() map[string]string {
	return map[string]string{
		"js":         "javascript",
		"javascript": "javascript",
		"ts":         "typescript",
		"typescript": "typescript",
		"reactjs":    "react",
		"react.js":   "react",
		"react":      "react",
		"nodejs":     "node",
		"node.js":    "node",
		"node":       "node",
		"nextjs":     "nextjs",
		"next.js":    "nextjs",
		"golang":     "go",
		"go":         "go",
		"py":         "python",
		"python":     "python",
		"postgres":   "postgresql",
		"postgresql": "postgresql",
		"k8s":        "kubernetes",
		"kubernetes": "kubernetes",
		"css3":       "css",
		"css":        "css",
		"html5":      "html",
		"html":       "html",
		"ci/cd":      "cicd",
		"ci-cd":      "cicd",
		"cicd":       "cicd",
		"ux":         "design",
		"ui":         "design",
		"design":     "design",
	}
}
