package counterstore

import (
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	EnsureExist(rec dbmodels.Counter) error
	// NextValue атомарно увеличивает счетчик и возвращает отформатированный номер
	NextValue(name string) (formatted string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) EnsureExist(rec dbmodels.Counter) error {
	err := i.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rec).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка создания счетчика")
	}
	return nil
}

func (i impl) NextValue(name string) (formatted string, err error) {
	rec := dbmodels.Counter{}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		txErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", name).
			First(&rec).
			Error
		if txErr != nil {
			return errors.Wrapf(txErr, "счетчик %s не найден", name)
		}
		rec.Value++
		return tx.
			Model(&dbmodels.Counter{}).
			Where("name = ?", name).
			Update("value", rec.Value).
			Error
	})
	if err != nil {
		return "", err
	}
	return rec.FormatValue(), nil
}
