// Package notice composes the user-visible text and data payload of an
// assignment notification. The literal templates are a contract with the
// mobile clients, which parse them; change them only together with a new
// Locale.
package notice

import (
	"github.com/kimneyapti/notifier/internal/domain/item"
)

// DataTypeItemAssigned is the value of the "type" data key for assignment pushes.
const DataTypeItemAssigned = "item_assigned"

// Data payload keys.
const (
	KeyType          = "type"
	KeyWorkspaceID   = "workspaceId"
	KeyItemID        = "itemId"
	KeyWorkspaceName = "workspaceName"
)

// Notice is the title/body pair shown by the device.
type Notice struct {
	Title string
	Body  string
}

// CategorySymbol maps a raw type tag to its glyph. Unknown tags, including
// the empty string, map to item.DefaultSymbol.
func CategorySymbol(tag string) string {
	return item.Category(tag).Symbol()
}

// ComposeAssignment builds the notice sent to a user who was just assigned
// an item titled itemTitle by assignerName.
func ComposeAssignment(l Locale, assignerName, itemTitle string, c item.Category) Notice {
	p := PhrasesFor(l)
	return Notice{
		Title: c.Symbol() + " " + p.AssignedTitle,
		Body:  p.assignedBody(assignerName, itemTitle),
	}
}

// AssignmentData builds the structured data delivered alongside the notice.
// All values are strings, as required by the push backend.
func AssignmentData(workspaceID, itemID, workspaceName string) map[string]string {
	return map[string]string{
		KeyType:          DataTypeItemAssigned,
		KeyWorkspaceID:   workspaceID,
		KeyItemID:        itemID,
		KeyWorkspaceName: workspaceName,
	}
}
