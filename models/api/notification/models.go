package notificationapimodels

import "time"

type NotificationView struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	LeaveID   string    `json:"leave_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCountView struct {
	Count int64 `json:"count"`
}
