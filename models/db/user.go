package dbmodels

import (
	"fmt"
	"hrms-backend/models"
	employeeapimodels "hrms-backend/models/api/employee"
	"time"
)

type User struct {
	BaseModel
	EmployeeNumber  string            `gorm:"type:varchar(20);uniqueIndex"`
	Email           string            `gorm:"type:varchar(255);uniqueIndex"`
	NewEmail        string            `gorm:"type:varchar(255)"`
	Password        string            `gorm:"type:varchar(128)"`
	FirstName       string            `gorm:"type:varchar(150)"`
	LastName        string            `gorm:"type:varchar(150)"`
	MiddleName      string            `gorm:"type:varchar(150)"`
	PhoneNumber     string            `gorm:"type:varchar(15)"`
	Role            models.UserRole   `gorm:"type:varchar(50)"`
	Status          models.UserStatus `gorm:"type:varchar(50)"`
	IsApproved      bool
	IsEmailVerified bool
	JobTitle        string `gorm:"type:varchar(255)"`
	TeamID          *string
	Team            *Team `gorm:"foreignKey:TeamID"`
	JoinDate        time.Time
	Address         string
	BankName        string `gorm:"type:varchar(255)"`
	BankAccount     string `gorm:"type:varchar(50)"`
	TaxNumber       string `gorm:"type:varchar(50)"`
	LastLogin       time.Time
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

func (r User) ToModel() employeeapimodels.UserView {
	teamID := ""
	if r.TeamID != nil {
		teamID = *r.TeamID
	}
	return employeeapimodels.UserView{
		ID:             r.ID,
		EmployeeNumber: r.EmployeeNumber,
		Email:          r.Email,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		MiddleName:     r.MiddleName,
		PhoneNumber:    r.PhoneNumber,
		Role:           string(r.Role),
		RoleName:       r.Role.ToHuman(),
		Status:         string(r.Status),
		StatusName:     r.Status.ToHuman(),
		IsApproved:     r.IsApproved,
		JobTitle:       r.JobTitle,
		TeamID:         teamID,
		JoinDate:       r.JoinDate,
		Address:        r.Address,
		BankName:       r.BankName,
		BankAccount:    r.BankAccount,
		TaxNumber:      r.TaxNumber,
	}
}
