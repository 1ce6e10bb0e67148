package employeeapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type UserView struct {
	ID             string    `json:"id"`
	EmployeeNumber string    `json:"employee_number"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	MiddleName     string    `json:"middle_name,omitempty"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Role           string    `json:"role"`
	RoleName       string    `json:"role_name"`
	Status         string    `json:"status"`
	StatusName     string    `json:"status_name"`
	IsApproved     bool      `json:"is_approved"`
	JobTitle       string    `json:"job_title,omitempty"`
	TeamID         string    `json:"team_id,omitempty"`
	JoinDate       time.Time `json:"join_date"`
	Address        string    `json:"address,omitempty"`
	BankName       string    `json:"bank_name,omitempty"`
	BankAccount    string    `json:"bank_account,omitempty"`
	TaxNumber      string    `json:"tax_number,omitempty"`
}

// UserData - данные создания/редактирования сотрудника админом или HR
type UserData struct {
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	MiddleName  string `json:"middle_name"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	JobTitle    string `json:"job_title"`
	TeamID      string `json:"team_id"`
}

func (r UserData) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return errors.New("не указаны имя и фамилия")
	}
	return nil
}

// ProfileData - данные, которые сотрудник меняет сам
type ProfileData struct {
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	BankName    string `json:"bank_name"`
	BankAccount string `json:"bank_account"`
	TaxNumber   string `json:"tax_number"`
}

type UserFind struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	OnlyActive bool   `json:"only_active"`
}
