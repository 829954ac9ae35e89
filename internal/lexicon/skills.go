// Package lexicon holds the static vocabulary tables the analyzers and the
// search engine share: skill terms by category, level/job-type/sector keyword
// sets, stop words, and the synonym map. Pure data, no dependencies.
package lexicon

import "github.com/jonathan/intern-match/internal/types"

// skillVocabulary maps each category to its recognized skill terms.
// Terms are stored lowercase; multi-word terms are matched via n-gram tokens.
var skillVocabulary = map[types.SkillCategory][]string{
	types.CategoryProgramming: {
		"python", "java", "javascript", "typescript", "go", "golang", "c++",
		"c#", "ruby", "php", "swift", "kotlin", "rust", "scala", "r",
		"matlab", "sql", "html", "css", "bash",
	},
	types.CategoryFrameworks: {
		"react", "angular", "vue", "node.js", "nodejs", "express", "django",
		"flask", "spring", "rails", "laravel", ".net", "next.js", "svelte",
		"fastapi", "gin",
	},
	types.CategoryDatabases: {
		"mysql", "postgresql", "postgres", "mongodb", "redis", "sqlite",
		"elasticsearch", "cassandra", "dynamodb", "oracle", "firebase",
	},
	types.CategoryCloud: {
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
		"terraform", "heroku", "lambda", "s3", "ec2", "cloudformation",
	},
	types.CategoryDataScience: {
		"machine learning", "deep learning", "data analysis", "pandas",
		"numpy", "tensorflow", "pytorch", "scikit-learn", "nlp",
		"computer vision", "statistics", "data visualization", "tableau",
		"power bi", "jupyter",
	},
	types.CategoryDesign: {
		"figma", "sketch", "photoshop", "illustrator", "ui design",
		"ux design", "wireframing", "prototyping", "user research",
	},
	types.CategoryManagement: {
		"agile", "scrum", "kanban", "jira", "project management",
		"product management", "stakeholder management", "roadmap",
	},
	types.CategorySoft: {
		"communication", "teamwork", "leadership", "problem solving",
		"critical thinking", "time management", "collaboration",
		"presentation", "mentoring", "adaptability",
	},
	types.CategoryTesting: {
		"unit testing", "integration testing", "selenium", "cypress",
		"jest", "pytest", "junit", "tdd", "qa", "test automation",
	},
	types.CategoryAPIs: {
		"rest", "rest api", "graphql", "grpc", "websocket", "oauth",
		"json", "api design", "microservices", "webhooks",
	},
	types.CategoryVersionControl: {
		"git", "github", "gitlab", "bitbucket", "ci/cd", "jenkins",
		"github actions",
	},
}

// Categories returns every skill category in a fixed, deterministic order.
func Categories() []types.SkillCategory {
	return []types.SkillCategory{
		types.CategoryProgramming,
		types.CategoryFrameworks,
		types.CategoryDatabases,
		types.CategoryCloud,
		types.CategoryDataScience,
		types.CategoryDesign,
		types.CategoryManagement,
		types.CategorySoft,
		types.CategoryTesting,
		types.CategoryAPIs,
		types.CategoryVersionControl,
	}
}

// SkillsIn returns the vocabulary terms for one category.
func SkillsIn(category types.SkillCategory) []string {
	return skillVocabulary[category]
}

// categorySectors maps resume skill categories to the sectors they imply.
// Used by the matcher's sector affinity score.
var categorySectors = map[types.SkillCategory][]string{
	types.CategoryProgramming:    {"technology"},
	types.CategoryFrameworks:     {"technology"},
	types.CategoryDatabases:      {"technology"},
	types.CategoryCloud:          {"technology"},
	types.CategoryDataScience:    {"technology", "finance", "research"},
	types.CategoryDesign:         {"design", "marketing"},
	types.CategoryManagement:     {"business", "consulting"},
	types.CategorySoft:           {},
	types.CategoryTesting:        {"technology"},
	types.CategoryAPIs:           {"technology"},
	types.CategoryVersionControl: {"technology"},
}

// SectorsFor returns the sectors implied by a skill category. Soft skills
// imply no sector.
func SectorsFor(category types.SkillCategory) []string {
	return categorySectors[category]
}
