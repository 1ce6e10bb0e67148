package financestore

import (
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Finance) (id string, err error)
	GetByID(id string) (rec *dbmodels.Finance, err error)
	GetByUserAndPeriod(userID, period string) (rec *dbmodels.Finance, err error)
	Update(id string, updMap map[string]interface{}) error
	ListByPeriod(period string) (list []dbmodels.Finance, err error)
	ListByUser(userID string) (list []dbmodels.Finance, err error)
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

func (i impl) Create(rec dbmodels.Finance) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Finance, error) {
	rec := dbmodels.Finance{}
	err := i.db.
		Preload("User").
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

func (i impl) GetByUserAndPeriod(userID, period string) (*dbmodels.Finance, error) {
	rec := dbmodels.Finance{}
	err := i.db.
		Preload("User").
		Where("user_id = ?", userID).
		Where("period = ?", period).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Finance{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListByPeriod(period string) (list []dbmodels.Finance, err error) {
	list = []dbmodels.Finance{}
	err = i.db.
		Preload("User").
		Where("period = ?", period).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByUser(userID string) (list []dbmodels.Finance, err error) {
	list = []dbmodels.Finance{}
	err = i.db.
		Preload("User").
		Where("user_id = ?", userID).
		Order("period desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Finance{}).
		Error
}
