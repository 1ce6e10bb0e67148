package dbmodels

import (
	teamapimodels "hrms-backend/models/api/team"

	"github.com/pkg/errors"
)

type Team struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Description string
	ManagerID   string `gorm:"type:varchar(36)"`
	Manager     *User  `gorm:"foreignKey:ManagerID"`
	Members     []User `gorm:"foreignKey:TeamID"`
}

func (r Team) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название команды")
	}
	return nil
}

func (r Team) ToModel() teamapimodels.TeamView {
	view := teamapimodels.TeamView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ManagerID:   r.ManagerID,
		Members:     make([]teamapimodels.TeamMember, 0, len(r.Members)),
	}
	if r.Manager != nil {
		view.ManagerName = r.Manager.GetFullName()
	}
	for _, m := range r.Members {
		view.Members = append(view.Members, teamapimodels.TeamMember{
			ID:             m.ID,
			FullName:       m.GetFullName(),
			EmployeeNumber: m.EmployeeNumber,
			JobTitle:       m.JobTitle,
		})
	}
	return view
}
