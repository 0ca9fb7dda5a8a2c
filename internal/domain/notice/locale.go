package notice

import "strings"

// Locale selects one of the fixed phrase sets.
type Locale string

const (
	LocaleTurkish Locale = "tr"
	LocaleEnglish Locale = "en"
)

// DefaultLocale is the phrase set existing clients were built against.
const DefaultLocale = LocaleTurkish

// DefaultWorkspaceName is shown when a workspace has no name, in every locale.
const DefaultWorkspaceName = "Workspace"

// Phrases holds the localized literals for one Locale.
type Phrases struct {
	// AssignedTitle follows the category symbol in the notification title.
	AssignedTitle string
	// UnknownUser replaces a missing display name.
	UnknownUser string
	// NewItemTitle replaces a missing title on a freshly created item.
	NewItemTitle string
	// ItemTitle replaces a missing title on a reassigned item.
	ItemTitle string

	bodyInfix  string
	bodySuffix string
}

var phrases = map[Locale]Phrases{
	LocaleTurkish: {
		AssignedTitle: "Sana iş atandı!",
		UnknownUser:   "Bilinmeyen",
		NewItemTitle:  "Yeni görev",
		ItemTitle:     "Görev",
		bodyInfix:     " sana \"",
		bodySuffix:    "\" atadı",
	},
	LocaleEnglish: {
		AssignedTitle: "Task assigned to you!",
		UnknownUser:   "Unknown",
		NewItemTitle:  "new task",
		ItemTitle:     "Task",
		bodyInfix:     " assigned you \"",
		bodySuffix:    "\"",
	},
}

// PhrasesFor returns the phrase set for l, falling back to DefaultLocale.
func PhrasesFor(l Locale) Phrases {
	if p, ok := phrases[l]; ok {
		return p
	}
	return phrases[DefaultLocale]
}

// ParseLocale normalizes a configured locale string. ok is false when the
// value names no known phrase set.
func ParseLocale(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	_, ok := phrases[l]
	return l, ok
}

func (p Phrases) assignedBody(assignerName, itemTitle string) string {
	return assignerName + p.bodyInfix + itemTitle + p.bodySuffix
}
