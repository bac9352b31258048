package dto

import (
	"codebiruni-be/internal/model"
)

// DashboardResponse aggregates the counters the admin landing page renders.
type DashboardResponse struct {
	Collections    map[string]int64        `json:"collections"`
	UnreadMessages int64                   `json:"unread_messages"`
	RecentMessages []*model.ContactMessage `json:"recent_messages"`
}

type LogQuery struct {
	Level  string `query:"level"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// AdminNotification is what the websocket hub pushes to connected dashboards.
type AdminNotification struct {
	Type    string      `json:"type"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Payload interface{} `json:"payload,omitempty"`
}
