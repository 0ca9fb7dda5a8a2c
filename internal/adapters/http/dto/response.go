// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/kimneyapti/notifier/internal/ports"
)

// EventResponse reports what one change event produced.
type EventResponse struct {
	Notified     bool   `json:"notified"`
	Reason       string `json:"reason"`
	SuccessCount int    `json:"success_count"`
	Pruned       int    `json:"pruned"`
}

// ToEventResponse converts a service outcome to an HTTP response DTO.
func ToEventResponse(o *ports.Outcome) EventResponse {
	return EventResponse{
		Notified:     o.Notified,
		Reason:       o.Reason.String(),
		SuccessCount: o.Result.SuccessCount,
		Pruned:       len(o.Result.PrunedTokens),
	}
}
