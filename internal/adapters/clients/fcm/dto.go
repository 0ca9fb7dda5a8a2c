package fcm

import (
	"strings"

	"github.com/kimneyapti/notifier/internal/domain/push"
)

// sendRequest is the body of POST /v1/projects/{project}/messages:send.
type sendRequest struct {
	Message messageDTO `json:"message"`
}

type messageDTO struct {
	Token        string            `json:"token"`
	Notification notificationDTO   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
	Android      *androidDTO       `json:"android,omitempty"`
	APNS         *apnsDTO          `json:"apns,omitempty"`
}

type notificationDTO struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type androidDTO struct {
	Priority     string                  `json:"priority,omitempty"`
	Notification *androidNotificationDTO `json:"notification,omitempty"`
}

type androidNotificationDTO struct {
	ChannelID string `json:"channel_id,omitempty"`
	Icon      string `json:"icon,omitempty"`
}

type apnsDTO struct {
	Payload apnsPayloadDTO `json:"payload"`
}

type apnsPayloadDTO struct {
	APS apsDTO `json:"aps"`
}

type apsDTO struct {
	Badge *int   `json:"badge,omitempty"`
	Sound string `json:"sound,omitempty"`
}

// sendResponse is the success body: the backend-assigned message name.
type sendResponse struct {
	Name string `json:"name"`
}

// errorResponse is the Google API error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []errorDetail `json:"details"`
}

type errorDetail struct {
	Type      string `json:"@type"`
	ErrorCode string `json:"errorCode"`
}

// toSendRequest addresses msg to a single device token.
func toSendRequest(msg *push.Message, token string) sendRequest {
	m := messageDTO{
		Token: token,
		Notification: notificationDTO{
			Title: msg.Notice.Title,
			Body:  msg.Notice.Body,
		},
		Data: msg.Data,
	}

	if a := msg.Hints.Android; a != (push.AndroidHints{}) {
		m.Android = &androidDTO{Priority: strings.ToUpper(a.Priority)}
		if a.ChannelID != "" || a.Icon != "" {
			m.Android.Notification = &androidNotificationDTO{ChannelID: a.ChannelID, Icon: a.Icon}
		}
	}

	if h := msg.Hints.APNS; h != (push.APNSHints{}) {
		aps := apsDTO{Sound: h.Sound}
		if h.Badge > 0 {
			badge := h.Badge
			aps.Badge = &badge
		}
		m.APNS = &apnsDTO{Payload: apnsPayloadDTO{APS: aps}}
	}

	return sendRequest{Message: m}
}
