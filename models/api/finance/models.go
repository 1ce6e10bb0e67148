package financeapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type FinanceData struct {
	UserID     string  `json:"user_id"`
	Period     string  `json:"period"`
	Basic      float64 `json:"basic"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
	Comment    string  `json:"comment"`
}

func (r FinanceData) Validate() error {
	if r.UserID == "" {
		return errors.New("не указан сотрудник")
	}
	if _, err := time.Parse("2006-01", r.Period); err != nil {
		return errors.New("период должен быть в формате YYYY-MM")
	}
	if r.Basic < 0 || r.Allowances < 0 || r.Deductions < 0 {
		return errors.New("суммы не могут быть отрицательными")
	}
	return nil
}

type FinanceView struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	UserName       string     `json:"user_name,omitempty"`
	EmployeeNumber string     `json:"employee_number,omitempty"`
	Period         string     `json:"period"`
	Basic          float64    `json:"basic"`
	Allowances     float64    `json:"allowances"`
	Deductions     float64    `json:"deductions"`
	Net            float64    `json:"net"`
	Paid           bool       `json:"paid"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
	Comment        string     `json:"comment,omitempty"`
}

type PeriodFilter struct {
	Period string `json:"period"`
	UserID string `json:"user_id"`
}

func (r PeriodFilter) Validate() error {
	if _, err := time.Parse("2006-01", r.Period); err != nil {
		return errors.New("период должен быть в формате YYYY-MM")
	}
	return nil
}
