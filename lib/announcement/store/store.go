package announcementstore

import (
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Announcement) (id string, err error)
	GetByID(id string) (rec *dbmodels.Announcement, err error)
	ListForRole(role string) (list []dbmodels.Announcement, err error)
	List() (list []dbmodels.Announcement, err error)
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

func (i impl) Create(rec dbmodels.Announcement) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Announcement, error) {
	rec := dbmodels.Announcement{}
	err := i.db.
		Preload("Author").
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

// ListForRole - объявления, адресованные роли.
// Пустой список ролей означает объявление для всех
func (i impl) ListForRole(role string) (list []dbmodels.Announcement, err error) {
	list = []dbmodels.Announcement{}
	err = i.db.
		Preload("Author").
		Where("audience is null or cardinality(audience) = 0 or ? = any(audience)", role).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List() (list []dbmodels.Announcement, err error) {
	list = []dbmodels.Announcement{}
	err = i.db.
		Preload("Author").
		Order("created_at desc").
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
		Delete(&dbmodels.Announcement{}).
		Error
}
