package dto

import (
	"strings"

	"github.com/kimneyapti/notifier/internal/domain"
	"github.com/kimneyapti/notifier/internal/domain/item"
)

// CloudEvents types emitted by the document store for item changes.
const (
	EventTypeCreated = "google.cloud.firestore.document.v1.created"
	EventTypeUpdated = "google.cloud.firestore.document.v1.updated"
)

// Item document field names.
const (
	fieldTitle      = "title"
	fieldType       = "type"
	fieldCreatedBy  = "createdBy"
	fieldAssigneeID = "assigneeId"
	fieldUpdatedBy  = "updatedBy"
)

const msgRequired = "is required"

// DocumentEventData is the JSON body of a document change event. Value is
// the document after the change and OldValue the document before it; either
// may be absent.
type DocumentEventData struct {
	Value    *Document `json:"value,omitempty"`
	OldValue *Document `json:"oldValue,omitempty"`
}

// Document is a document snapshot with typed field values.
type Document struct {
	Name   string           `json:"name"`
	Fields map[string]Value `json:"fields,omitempty"`
}

// Value is a typed document field value. Only string values carry meaning
// for items; any other kind, including an explicit null, reads as unset.
type Value struct {
	StringValue *string `json:"stringValue,omitempty"`
	NullValue   *string `json:"nullValue,omitempty"`
}

// StringField returns the field's string value, or "" when absent or not a string.
func (d *Document) StringField(field string) string {
	v, ok := d.Fields[field]
	if !ok || v.StringValue == nil {
		return ""
	}
	return *v.StringValue
}

// Name returns the resource name of whichever snapshot is present.
func (e *DocumentEventData) Name() string {
	if e.Value != nil && e.Value.Name != "" {
		return e.Value.Name
	}
	if e.OldValue != nil {
		return e.OldValue.Name
	}
	return ""
}

// ParseItemPath extracts the workspace and item ids from a document resource
// name or subject such as
// projects/p/databases/(default)/documents/workspaces/{w}/items/{i}.
func ParseItemPath(name string) (workspaceID, itemID string, err error) {
	rest := name
	if i := strings.LastIndex(name, "documents/"); i >= 0 {
		rest = name[i+len("documents/"):]
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 4 || parts[0] != "workspaces" || parts[2] != "items" || parts[1] == "" || parts[3] == "" {
		return "", "", &domain.ValidationError{
			Fields: map[string]string{"document": "must be workspaces/{workspaceId}/items/{itemId}"},
		}
	}
	return parts[1], parts[3], nil
}

// ToItem converts a snapshot to a domain Item. A nil document yields nil.
func ToItem(d *Document, workspaceID, itemID string) *item.Item {
	if d == nil {
		return nil
	}
	return &item.Item{
		ID:          itemID,
		WorkspaceID: workspaceID,
		Title:       d.StringField(fieldTitle),
		Type:        item.Category(d.StringField(fieldType)),
		CreatedBy:   d.StringField(fieldCreatedBy),
		AssigneeID:  d.StringField(fieldAssigneeID),
		UpdatedBy:   d.StringField(fieldUpdatedBy),
	}
}

// ToCreatedEvent builds the creation event. documentPath overrides the
// snapshot name when the transport supplies it separately.
func (e *DocumentEventData) ToCreatedEvent(documentPath string) (item.CreatedEvent, error) {
	workspaceID, itemID, err := e.itemPath(documentPath)
	if err != nil {
		return item.CreatedEvent{}, err
	}
	return item.CreatedEvent{
		WorkspaceID: workspaceID,
		ItemID:      itemID,
		Item:        ToItem(e.Value, workspaceID, itemID),
	}, nil
}

// ToUpdatedEvent builds the update event.
func (e *DocumentEventData) ToUpdatedEvent(documentPath string) (item.UpdatedEvent, error) {
	workspaceID, itemID, err := e.itemPath(documentPath)
	if err != nil {
		return item.UpdatedEvent{}, err
	}
	return item.UpdatedEvent{
		WorkspaceID: workspaceID,
		ItemID:      itemID,
		Before:      ToItem(e.OldValue, workspaceID, itemID),
		After:       ToItem(e.Value, workspaceID, itemID),
	}, nil
}

// itemPath resolves the path ids. An event with no path and no snapshot is
// malformed but not invalid: it decodes to empty ids and nil snapshots so
// the service can skip it.
func (e *DocumentEventData) itemPath(documentPath string) (string, string, error) {
	name := documentPath
	if name == "" {
		name = e.Name()
	}
	if name == "" {
		if e.Value == nil && e.OldValue == nil {
			return "", "", nil
		}
		return "", "", &domain.ValidationError{Fields: map[string]string{"document": msgRequired}}
	}
	return ParseItemPath(name)
}
