// Package catalog holds the static table of programming languages a user can
// request code in.
package catalog

// Language describes one selectable programming language.
type Language struct {
	ID         string // Identifier sent to the generation service (e.g. "python")
	Label      string // Display label (e.g. "Python")
	Icon       string // Glyph shown next to the label
	Lexer      string // chroma lexer name used for highlighting
	PromptName string // Name used when building model prompts (e.g. "Python 3")
}

// languages is ordered; the first entry is the default.
var languages = []Language{
	{ID: "javascript", Label: "JavaScript", Icon: "🟨", Lexer: "javascript", PromptName: "JavaScript (ES6+)"},
	{ID: "python", Label: "Python", Icon: "🐍", Lexer: "python", PromptName: "Python 3"},
	{ID: "java", Label: "Java", Icon: "☕", Lexer: "java", PromptName: "Java"},
	{ID: "cpp", Label: "C++", Icon: "⚡", Lexer: "cpp", PromptName: "C++"},
	{ID: "go", Label: "Go", Icon: "🔷", Lexer: "go", PromptName: "Go"},
	{ID: "typescript", Label: "TypeScript", Icon: "💙", Lexer: "typescript", PromptName: "TypeScript"},
	{ID: "rust", Label: "Rust", Icon: "🦀", Lexer: "rust", PromptName: "Rust"},
	{ID: "php", Label: "PHP", Icon: "🐘", Lexer: "php", PromptName: "PHP"},
}

// All returns every language in catalog order.
func All() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Default returns the primary language, used when an identifier is unknown.
func Default() Language {
	return languages[0]
}

// Lookup returns the language with the given identifier.
func Lookup(id string) (Language, bool) {
	for _, l := range languages {
		if l.ID == id {
			return l, true
		}
	}
	return Language{}, false
}

// Resolve returns the language for id, or Default when id is unknown.
func Resolve(id string) Language {
	if l, ok := Lookup(id); ok {
		return l
	}
	return Default()
}

// Index returns the position of id in the catalog, or -1.
func Index(id string) int {
	for i, l := range languages {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Step returns the language delta positions away from id, wrapping around.
// Unknown identifiers start from the default language.
func Step(id string, delta int) Language {
	i := Index(id)
	if i < 0 {
		i = 0
	}
	n := len(languages)
	return languages[((i+delta)%n+n)%n]
}

// IDs returns all identifiers in catalog order.
func IDs() []string {
	ids := make([]string, len(languages))
	for i, l := range languages {
		ids[i] = l.ID
	}
	return ids
}
