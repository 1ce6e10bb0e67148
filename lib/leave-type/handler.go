package leavetypeprovider

import (
	"hrms-backend/db"
	leavetypestore "hrms-backend/lib/leave-type/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	leaveapimodels "hrms-backend/models/api/leave"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(request leaveapimodels.LeaveTypeData) (id string, err error)
	Update(id string, request leaveapimodels.LeaveTypeData) error
	Get(id string) (item leaveapimodels.LeaveTypeView, err error)
	List() (list []leaveapimodels.LeaveTypeView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: leavetypestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store leavetypestore.Provider
}

func (i impl) Create(request leaveapimodels.LeaveTypeData) (id string, err error) {
	rec := dbmodels.LeaveType{
		Name:        request.Name,
		Description: request.Description,
		MaxDays:     request.MaxDays,
		ShortDay:    request.ShortDay,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("leave_type_name", rec.Name).
		WithField("rec_id", id).
		Info("создан тип отпуска")
	return id, nil
}

func (i impl) Update(id string, request leaveapimodels.LeaveTypeData) error {
	updMap := map[string]interface{}{
		"name":        request.Name,
		"description": request.Description,
		"max_days":    request.MaxDays,
		"short_day":   request.ShortDay,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("обновлен тип отпуска")
	return nil
}

func (i impl) Get(id string) (item leaveapimodels.LeaveTypeView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return leaveapimodels.LeaveTypeView{}, err
	}
	if rec == nil {
		return leaveapimodels.LeaveTypeView{}, errors.New("тип отпуска не найден")
	}
	return rec.ToModel(), nil
}

func (i impl) List() (list []leaveapimodels.LeaveTypeView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]leaveapimodels.LeaveTypeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удален тип отпуска")
	return nil
}
