package teamhandler

import (
	"hrms-backend/db"
	teamstore "hrms-backend/lib/team/store"
	usersstore "hrms-backend/lib/users/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	teamapimodels "hrms-backend/models/api/team"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data teamapimodels.TeamData) (id string, err error)
	Get(id string) (*teamapimodels.TeamView, error)
	List() (list []teamapimodels.TeamView, err error)
	Update(id string, data teamapimodels.TeamData) error
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:      teamstore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"usersStore", instance.usersStore,
	)
	Instance = instance
}

type impl struct {
	store      teamstore.Provider
	usersStore usersstore.Provider
}

func (i impl) Create(data teamapimodels.TeamData) (id string, err error) {
	err = data.Validate()
	if err != nil {
		return "", err
	}
	err = i.checkManager(data.ManagerID)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Team{
		Name:        data.Name,
		Description: data.Description,
		ManagerID:   data.ManagerID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка создания команды")
		return "", errors.Wrap(err, "ошибка создания команды")
	}
	return id, nil
}

func (i impl) checkManager(managerID string) error {
	if managerID == "" {
		return nil
	}
	manager, err := i.usersStore.GetByID(managerID)
	if err != nil {
		return err
	}
	if manager == nil {
		return errors.New("руководитель не найден")
	}
	return nil
}

func (i impl) Get(id string) (*teamapimodels.TeamView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("команда не найдена")
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) List() (list []teamapimodels.TeamView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]teamapimodels.TeamView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Update(id string, data teamapimodels.TeamData) error {
	err := data.Validate()
	if err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("команда не найдена")
	}
	err = i.checkManager(data.ManagerID)
	if err != nil {
		return err
	}
	return i.store.Update(id, map[string]interface{}{
		"name":        data.Name,
		"description": data.Description,
		"manager_id":  data.ManagerID,
	})
}

// Delete удаляет команду. Команда с сотрудниками не удаляется
func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("команда не найдена")
	}
	memberCount, err := i.store.MemberCount(id)
	if err != nil {
		return err
	}
	if memberCount > 0 {
		return errors.New("в команде есть сотрудники, удаление невозможно")
	}
	return i.store.Delete(id)
}
