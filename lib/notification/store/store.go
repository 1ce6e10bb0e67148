package notificationstore

import (
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	CreateBulk(recList []dbmodels.Notification) error
	ListByUser(userID string, limit int) (list []dbmodels.Notification, err error)
	UnreadCount(userID string) (int64, error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
	Delete(userID, id string) error
	DeleteReadBefore(moment time.Time) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateBulk(recList []dbmodels.Notification) error {
	if len(recList) == 0 {
		return nil
	}
	return i.db.
		Create(&recList).
		Error
}

func (i impl) ListByUser(userID string, limit int) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UnreadCount(userID string) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("read = false").
		Count(&rowCount).
		Error
	if err != nil {
		return 0, errors.Wrap(err, "ошибка подсчета непрочитанных уведомлений")
	}
	return rowCount, nil
}

func (i impl) MarkRead(userID, id string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": time.Now(),
		}).
		Error
}

func (i impl) MarkAllRead(userID string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("user_id = ?", userID).
		Where("read = false").
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": time.Now(),
		}).
		Error
}

func (i impl) Delete(userID, id string) error {
	return i.db.
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Delete(&dbmodels.Notification{}).
		Error
}

func (i impl) DeleteReadBefore(moment time.Time) (int64, error) {
	tx := i.db.
		Where("read = true").
		Where("created_at < ?", moment).
		Delete(&dbmodels.Notification{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
