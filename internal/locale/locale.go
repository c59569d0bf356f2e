// Package locale holds the user-facing strings for each supported UI language.
package locale

import "fmt"

// Strings is one locale's table of UI text.
type Strings struct {
	Code           string
	Greeting       string // Seeded assistant message of a new conversation
	SwitchGreeting string // Seeded message when switching to an empty conversation
	NewChatTitle   string // Static title of every conversation summary
	ReplyTemplate  string // fmt template naming the language label, e.g. "Here is the code in %s:"
	ErrorReply     string // Assistant message appended when a turn fails
	GenericFailure string // Notification text when the failure has no message
	Placeholder    string
	BusyHint       string // Composer placeholder while a reply is pending
	Disclaimer     string
	Subtitle       string
	CopyHint       string
	Copied         string
	NewChat        string
	RoutedReply    string // Toast when a reply lands in a conversation that is not active
	DateFormat     string
}

var tables = map[string]Strings{
	"en": {
		Code:           "en",
		Greeting:       "Hi! I'm Gelaxyai, your scripting assistant. Pick a programming language and describe the code you need.",
		SwitchGreeting: "Hi! I'm Gelaxyai, your scripting assistant.",
		NewChatTitle:   "New chat",
		ReplyTemplate:  "Here is the code in %s:",
		ErrorReply:     "Sorry, something went wrong while generating the code. Please try again.",
		GenericFailure: "Code generation failed",
		Placeholder:    "Describe the code you need...",
		BusyHint:       "Generating...",
		Disclaimer:     "Gelaxyai can make mistakes. Check important information.",
		Subtitle:       "AI code generation",
		CopyHint:       "ctrl+y copy",
		Copied:         "Code copied to clipboard",
		NewChat:        "New chat",
		RoutedReply:    "A reply arrived in another conversation",
		DateFormat:     "2006-01-02",
	},
	"ru": {
		Code:           "ru",
		Greeting:       "Привет! Я Gelaxyai - ваш помощник в создании скриптов. Выберите язык программирования и опишите, какой код вам нужен.",
		SwitchGreeting: "Привет! Я Gelaxyai - ваш помощник в создании скриптов.",
		NewChatTitle:   "Новый чат",
		ReplyTemplate:  "Вот код на %s:",
		ErrorReply:     "Извините, произошла ошибка при генерации кода. Попробуйте еще раз.",
		GenericFailure: "Не удалось сгенерировать код",
		Placeholder:    "Опишите какой код вам нужен...",
		BusyHint:       "Генерация...",
		Disclaimer:     "Gelaxyai может совершать ошибки. Проверяйте важную информацию.",
		Subtitle:       "Генерация кода с ИИ",
		CopyHint:       "ctrl+y копировать",
		Copied:         "Код скопирован",
		NewChat:        "Новый чат",
		RoutedReply:    "Ответ пришел в другой чат",
		DateFormat:     "02.01.2006",
	},
}

// Default is the locale used when none is configured.
const Default = "en"

// Get returns the table for code, falling back to Default.
func Get(code string) Strings {
	if s, ok := tables[code]; ok {
		return s
	}
	return tables[Default]
}

// Supported reports whether code has a string table.
func Supported(code string) bool {
	_, ok := tables[code]
	return ok
}

// Codes returns the supported locale codes.
func Codes() []string {
	return []string{"en", "ru"}
}

// Reply renders the reply header for a language label.
func (s Strings) Reply(label string) string {
	return fmt.Sprintf(s.ReplyTemplate, label)
}
