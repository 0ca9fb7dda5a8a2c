package item

// CreatedEvent is delivered when a document is created under
// workspaces/{WorkspaceID}/items/{ItemID}. Item is nil when the store sent
// no snapshot data.
type CreatedEvent struct {
	WorkspaceID string
	ItemID      string
	Item        *Item
}

// UpdatedEvent is delivered when a document under
// workspaces/{WorkspaceID}/items/{ItemID} changes. The store guarantees both
// snapshots for a real update; a nil snapshot marks a malformed event.
type UpdatedEvent struct {
	WorkspaceID string
	ItemID      string
	Before      *Item
	After       *Item
}

// AssignmentEvent is derived per invocation when a user becomes responsible
// for an item. It is never persisted.
type AssignmentEvent struct {
	ItemID           string
	WorkspaceID      string
	PreviousAssignee string
	NewAssignee      string
	ActingUserID     string
}

// FromCreated derives the assignment carried by a creation event. A non-empty
// SkipReason means no notification is warranted: the event carries no
// snapshot, the item is unassigned, or the creator assigned it to themselves.
func FromCreated(ev CreatedEvent) (AssignmentEvent, SkipReason) {
	if ev.Item == nil {
		return AssignmentEvent{}, SkipMalformed
	}
	it := ev.Item
	if it.AssigneeID == "" {
		return AssignmentEvent{}, SkipUnassigned
	}
	if it.AssigneeID == it.CreatedBy {
		return AssignmentEvent{}, SkipSelfAssigned
	}
	return AssignmentEvent{
		ItemID:       ev.ItemID,
		WorkspaceID:  ev.WorkspaceID,
		NewAssignee:  it.AssigneeID,
		ActingUserID: it.CreatedBy,
	}, SkipNone
}

// FromUpdated derives the assignment carried by an update event. The acting
// user is the last modifier, falling back to the creator; no stronger notion
// of "who reassigned" is recorded by the store.
func FromUpdated(ev UpdatedEvent) (AssignmentEvent, SkipReason) {
	if ev.Before == nil || ev.After == nil {
		return AssignmentEvent{}, SkipMalformed
	}
	oldAssignee, newAssignee := ev.Before.AssigneeID, ev.After.AssigneeID
	if oldAssignee == newAssignee {
		return AssignmentEvent{}, SkipUnchanged
	}
	if newAssignee == "" {
		return AssignmentEvent{}, SkipUnassigned
	}
	acting := ev.After.ActingUser()
	if acting == newAssignee {
		return AssignmentEvent{}, SkipSelfAssigned
	}
	return AssignmentEvent{
		ItemID:           ev.ItemID,
		WorkspaceID:      ev.WorkspaceID,
		PreviousAssignee: oldAssignee,
		NewAssignee:      newAssignee,
		ActingUserID:     acting,
	}, SkipNone
}
