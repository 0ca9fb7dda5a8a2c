package item

// Category is the type tag of an Item.
type Category string

const (
	CategoryActiveTask Category = "activeTask"
	CategoryBug        Category = "bug"
	CategoryLogic      Category = "logic"
	CategoryIdea       Category = "idea"
)

// DefaultCategory is assumed when an item carries no type.
const DefaultCategory = CategoryActiveTask

// DefaultSymbol is shown for any tag outside the known set.
const DefaultSymbol = "📋"

// IsValid returns true if the category is one of the defined constants.
func (c Category) IsValid() bool {
	switch c {
	case CategoryActiveTask, CategoryBug, CategoryLogic, CategoryIdea:
		return true
	default:
		return false
	}
}

// Symbol returns the glyph shown in front of notification titles. It is
// total: unknown tags map to DefaultSymbol.
func (c Category) Symbol() string {
	switch c {
	case CategoryActiveTask:
		return "🎯"
	case CategoryBug:
		return "🐛"
	case CategoryLogic:
		return "⚙️"
	case CategoryIdea:
		return "💡"
	default:
		return DefaultSymbol
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
