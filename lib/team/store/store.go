package teamstore

import (
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Team) (id string, err error)
	GetByID(id string) (rec *dbmodels.Team, err error)
	Update(id string, updMap map[string]interface{}) error
	List() (list []dbmodels.Team, err error)
	Delete(id string) error
	MemberCount(id string) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Team) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Team, error) {
	rec := dbmodels.Team{}
	err := i.db.
		Preload("Manager").
		Preload("Members").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Team{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) List() (list []dbmodels.Team, err error) {
	list = []dbmodels.Team{}
	err = i.db.
		Preload("Manager").
		Preload("Members").
		Order("name").
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
		Delete(&dbmodels.Team{}).
		Error
}

func (i impl) MemberCount(id string) (int64, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.User{}).
		Where("team_id = ?", id).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}
