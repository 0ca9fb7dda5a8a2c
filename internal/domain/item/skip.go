package item

// SkipReason explains why a change event produced no notification.
type SkipReason string

const (
	SkipNone         SkipReason = ""
	SkipMalformed    SkipReason = "malformed_event"
	SkipUnassigned   SkipReason = "no_assignee"
	SkipUnchanged    SkipReason = "assignee_unchanged"
	SkipSelfAssigned SkipReason = "self_assigned"
)

// String implements fmt.Stringer.
func (r SkipReason) String() string {
	return string(r)
}
