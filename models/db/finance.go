package dbmodels

import (
	financeapimodels "hrms-backend/models/api/finance"
	"time"

	"github.com/pkg/errors"
)

type Finance struct {
	BaseModel
	UserID string `gorm:"type:varchar(36);index:idx_finance_user_period,unique"`
	User   *User  `gorm:"foreignKey:UserID"`
	// Period - расчетный период в формате YYYY-MM
	Period     string  `gorm:"type:varchar(7);index:idx_finance_user_period,unique"`
	Basic      float64 `gorm:"type:numeric(12,2)"`
	Allowances float64 `gorm:"type:numeric(12,2)"`
	Deductions float64 `gorm:"type:numeric(12,2)"`
	Paid       bool
	PaidAt     *time.Time
	Comment    string
}

// NetAmount - сумма к выплате
func (r Finance) NetAmount() float64 {
	return r.Basic + r.Allowances - r.Deductions
}

func (r Finance) Validate() error {
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

func (r Finance) ToModel() financeapimodels.FinanceView {
	view := financeapimodels.FinanceView{
		ID:         r.ID,
		UserID:     r.UserID,
		Period:     r.Period,
		Basic:      r.Basic,
		Allowances: r.Allowances,
		Deductions: r.Deductions,
		Net:        r.NetAmount(),
		Paid:       r.Paid,
		PaidAt:     r.PaidAt,
		Comment:    r.Comment,
	}
	if r.User != nil {
		view.UserName = r.User.GetFullName()
		view.EmployeeNumber = r.User.EmployeeNumber
	}
	return view
}
