package dbmodels

import (
	"hrms-backend/models"
	notificationapimodels "hrms-backend/models/api/notification"
	"time"
)

type Notification struct {
	BaseModel
	UserID  string                  `gorm:"type:varchar(36);index"`
	Code    models.NotificationCode `gorm:"type:varchar(50)"`
	Message string
	// LeaveID - ссылка на заявку, если уведомление порождено отпуском
	LeaveID string `gorm:"type:varchar(36)"`
	Read    bool   `gorm:"index"`
	ReadAt  *time.Time
}

func (r Notification) ToModel() notificationapimodels.NotificationView {
	return notificationapimodels.NotificationView{
		ID:        r.ID,
		Code:      string(r.Code),
		Message:   r.Message,
		LeaveID:   r.LeaveID,
		Read:      r.Read,
		CreatedAt: r.CreatedAt,
	}
}
