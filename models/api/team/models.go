package teamapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type TeamData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ManagerID   string `json:"manager_id"`
}

func (r TeamData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название команды")
	}
	return nil
}

type TeamMember struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	EmployeeNumber string `json:"employee_number"`
	JobTitle       string `json:"job_title,omitempty"`
}

type TeamView struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	ManagerID   string       `json:"manager_id,omitempty"`
	ManagerName string       `json:"manager_name,omitempty"`
	Members     []TeamMember `json:"members"`
}
