// Package item models the assignable work units observed in the document
// store and the change events the store emits for them.
//
// Optional attributes are represented by the empty string. Identifiers are
// never legitimately empty, so an empty AssigneeID means "unassigned" and an
// empty UpdatedBy means "last modifier unknown".
package item

// Item is a snapshot of one task record under workspaces/{workspaceId}/items.
type Item struct {
	ID          string
	WorkspaceID string
	Title       string
	Type        Category
	CreatedBy   string
	AssigneeID  string
	UpdatedBy   string
}

// Category returns the item's type, or DefaultCategory when unset.
func (it *Item) Category() Category {
	if it.Type == "" {
		return DefaultCategory
	}
	return it.Type
}

// TitleOr returns the item's title, or def when the title is unset or empty.
func (it *Item) TitleOr(def string) string {
	if it.Title == "" {
		return def
	}
	return it.Title
}

// ActingUser returns the user considered responsible for the latest change:
// the last modifier when recorded, otherwise the creator.
func (it *Item) ActingUser() string {
	if it.UpdatedBy != "" {
		return it.UpdatedBy
	}
	return it.CreatedBy
}
