package usersstore

import (
	"hrms-backend/models"
	employeeapimodels "hrms-backend/models/api/employee"
	dbmodels "hrms-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	// FindByEmailWithNew ищет и по подтвержденной, и по ожидающей подтверждения почте
	FindByEmailWithNew(email string) (rec *dbmodels.User, err error)
	ExistByEmail(email string) (bool, error)
	Update(id string, updMap map[string]interface{}) error
	Find(filter employeeapimodels.UserFind, page, limit int) (list []dbmodels.User, rowCount int64, err error)
	ListByRole(role string) (list []dbmodels.User, err error)
	ListByIDs(ids []string) (list []dbmodels.User, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	exist, err := i.ExistByEmail(rec.Email)
	if err != nil {
		return "", err
	}
	if exist {
		return "", errors.New("пользователь с такой почтой уже существует")
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
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

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("email = ?", strings.ToLower(email)).
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

func (i impl) FindByEmailWithNew(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("email = ? or new_email = ?", strings.ToLower(email), strings.ToLower(email)).
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

func (i impl) ExistByEmail(email string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.User{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&rowCount).
		Error
	if err != nil {
		return false, errors.Wrap(err, "ошибка проверки почты")
	}
	return rowCount != 0, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Find(filter employeeapimodels.UserFind, page, limit int) (list []dbmodels.User, rowCount int64, err error) {
	list = []dbmodels.User{}
	tx := i.db.Model(&dbmodels.User{})
	if filter.Name != "" {
		searchName := "%" + strings.ToLower(filter.Name) + "%"
		tx = tx.Where("lower(first_name) like ? or lower(last_name) like ?", searchName, searchName)
	}
	if filter.Role != "" {
		tx = tx.Where("role = ?", filter.Role)
	}
	if filter.OnlyActive {
		tx = tx.Where("is_approved = true").
			Where("status <> ?", models.UserResignedStatus)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Order("last_name, first_name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListByRole(role string) (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	err = i.db.
		Where("role = ?", role).
		Where("is_approved = true").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByIDs(ids []string) (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	err = i.db.
		Where("id in ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
