package dbmodels

import (
	"hrms-backend/models"
	resignationapimodels "hrms-backend/models/api/resignation"
	"time"
)

// Clearance - подпись одного подразделения в обходном листе
type Clearance struct {
	Status     models.ClearanceStatus `gorm:"type:varchar(20);default:PENDING"`
	ApproverID string                 `gorm:"type:varchar(36)"`
	Notes      string
	DecidedAt  *time.Time
}

type Resignation struct {
	BaseModel
	UserID                 string `gorm:"type:varchar(36);uniqueIndex"`
	User                   *User  `gorm:"foreignKey:UserID"`
	Reason                 string
	LastWorkingDay         time.Time
	NoticePeriodDays       int
	KnowledgeTransferTo    string `gorm:"type:varchar(36)"`
	KnowledgeTransferNotes string
	AssetsReturned         bool
	AssetNotes             string
	ManagerClearance       Clearance `gorm:"embedded;embeddedPrefix:manager_"`
	ITClearance            Clearance `gorm:"embedded;embeddedPrefix:it_"`
	AdminClearance         Clearance `gorm:"embedded;embeddedPrefix:admin_"`
	FinanceClearance       Clearance `gorm:"embedded;embeddedPrefix:finance_"`
}

// ClearanceByDepartment - доступ к подписи по коду подразделения
func (r *Resignation) ClearanceByDepartment(dep models.ClearanceDepartment) *Clearance {
	switch dep {
	case models.ClearanceReportingManager:
		return &r.ManagerClearance
	case models.ClearanceIT:
		return &r.ITClearance
	case models.ClearanceAdmin:
		return &r.AdminClearance
	case models.ClearanceFinance:
		return &r.FinanceClearance
	}
	return nil
}

// OverallStatus - сводный статус процесса:
// APPROVED когда согласованы все четыре подписи,
// REJECTED если хотя бы одна отклонена,
// IN_PROGRESS если есть хотя бы одно решение, иначе PENDING
func (r Resignation) OverallStatus() models.ResignationStatus {
	clearances := []Clearance{r.ManagerClearance, r.ITClearance, r.AdminClearance, r.FinanceClearance}
	approved := 0
	decided := 0
	for _, c := range clearances {
		switch c.Status {
		case models.ClearanceRejectedStatus:
			return models.ResignationRejectedStatus
		case models.ClearanceApprovedStatus:
			approved++
			decided++
		}
	}
	if approved == len(clearances) {
		return models.ResignationApprovedStatus
	}
	if decided > 0 {
		return models.ResignationInProgressStatus
	}
	return models.ResignationPendingStatus
}

func (r Resignation) ToModel() resignationapimodels.ResignationView {
	view := resignationapimodels.ResignationView{
		ID:                     r.ID,
		UserID:                 r.UserID,
		Reason:                 r.Reason,
		LastWorkingDay:         r.LastWorkingDay,
		NoticePeriodDays:       r.NoticePeriodDays,
		KnowledgeTransferTo:    r.KnowledgeTransferTo,
		KnowledgeTransferNotes: r.KnowledgeTransferNotes,
		AssetsReturned:         r.AssetsReturned,
		AssetNotes:             r.AssetNotes,
		Status:                 string(r.OverallStatus()),
		StatusName:             r.OverallStatus().ToHuman(),
		Clearances: map[string]resignationapimodels.ClearanceView{
			string(models.ClearanceReportingManager): clearanceView(r.ManagerClearance),
			string(models.ClearanceIT):               clearanceView(r.ITClearance),
			string(models.ClearanceAdmin):            clearanceView(r.AdminClearance),
			string(models.ClearanceFinance):          clearanceView(r.FinanceClearance),
		},
		CreatedAt: r.CreatedAt,
	}
	if r.User != nil {
		view.UserName = r.User.GetFullName()
		view.EmployeeNumber = r.User.EmployeeNumber
	}
	return view
}

func clearanceView(c Clearance) resignationapimodels.ClearanceView {
	return resignationapimodels.ClearanceView{
		Status:     string(c.Status),
		StatusName: c.Status.ToHuman(),
		ApproverID: c.ApproverID,
		Notes:      c.Notes,
		DecidedAt:  c.DecidedAt,
	}
}
