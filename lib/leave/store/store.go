package leavestore

import (
	"hrms-backend/models"
	leaveapimodels "hrms-backend/models/api/leave"
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Leave) (id string, err error)
	CreateBulk(recList []dbmodels.Leave) error
	GetByID(id string) (rec *dbmodels.Leave, err error)
	ListRequests(filter leaveapimodels.LeaveFilter, excludeUserID string) (list []dbmodels.Leave, err error)
	ListAllotments(userID string) (list []dbmodels.Leave, err error)
	ListByUser(userID string) (list []dbmodels.Leave, err error)
	// SetDecision переводит заявку из PENDING в указанный статус.
	// Условие по статусу в запросе исключает повторную обработку двумя согласующими
	SetDecision(id string, status models.LeaveStatus, decidedBy, rejectReason string) (updated bool, err error)
	DeleteAllotments(userID string, leaveTypeIDs []string) error
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Leave) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) CreateBulk(recList []dbmodels.Leave) error {
	if len(recList) == 0 {
		return nil
	}
	return i.db.
		Create(&recList).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.Leave, error) {
	rec := dbmodels.Leave{}
	err := i.db.
		Preload("User").
		Preload("LeaveType").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListRequests(filter leaveapimodels.LeaveFilter, excludeUserID string) (list []dbmodels.Leave, err error) {
	list = []dbmodels.Leave{}
	tx := i.db.
		Preload("User").
		Preload("LeaveType").
		Where("kind = ?", models.LeavePersonalKind).
		Where("system_generated = false")
	if excludeUserID != "" {
		// согласующий не видит собственных заявок в списке на обработку
		tx = tx.Where("user_id <> ?", excludeUserID)
	}
	if filter.UserID != "" {
		tx = tx.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAllotments(userID string) (list []dbmodels.Leave, err error) {
	list = []dbmodels.Leave{}
	tx := i.db.
		Preload("User").
		Preload("LeaveType").
		Where("kind = ?", models.LeaveAllottedKind)
	if userID != "" {
		tx = tx.Where("user_id = ?", userID)
	}
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.Leave, err error) {
	list = []dbmodels.Leave{}
	err = i.db.
		Preload("LeaveType").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetDecision(id string, status models.LeaveStatus, decidedBy, rejectReason string) (updated bool, err error) {
	updMap := map[string]interface{}{
		"status":     status,
		"decided_by": decidedBy,
		"decided_at": time.Now(),
	}
	if rejectReason != "" {
		updMap["reject_reason"] = rejectReason
	}
	tx := i.db.
		Model(&dbmodels.Leave{}).
		Where("id = ?", id).
		Where("status = ?", models.LeavePendingStatus).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected != 0, nil
}

func (i impl) DeleteAllotments(userID string, leaveTypeIDs []string) error {
	if len(leaveTypeIDs) == 0 {
		return nil
	}
	return i.db.
		Where("user_id = ?", userID).
		Where("kind = ?", models.LeaveAllottedKind).
		Where("leave_type_id in ?", leaveTypeIDs).
		Delete(&dbmodels.Leave{}).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Leave{}).
		Error
}
