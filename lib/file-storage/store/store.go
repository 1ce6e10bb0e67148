package filesdbstorage

import (
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	SaveFile(rec dbmodels.FileStorage) (id string, err error)
	GetByID(userID, id string) (rec *dbmodels.FileStorage, err error)
	ListByUser(userID string, fileType dbmodels.FileType) (list []dbmodels.FileStorage, err error)
	Delete(userID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{db: DB}
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveFile(rec dbmodels.FileStorage) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(userID, id string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Where("id = ?", id).
		Where("user_id = ?", userID).
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

func (i impl) ListByUser(userID string, fileType dbmodels.FileType) (list []dbmodels.FileStorage, err error) {
	list = []dbmodels.FileStorage{}
	tx := i.db.
		Where("user_id = ?", userID)
	if fileType != "" {
		tx = tx.Where("type = ?", fileType)
	}
	err = tx.Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(userID, id string) error {
	return i.db.
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Delete(&dbmodels.FileStorage{}).
		Error
}
