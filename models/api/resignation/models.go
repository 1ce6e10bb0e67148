package resignationapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ResignationData - заявление сотрудника об увольнении
type ResignationData struct {
	Reason                 string    `json:"reason"`
	LastWorkingDay         time.Time `json:"last_working_day"`
	NoticePeriodDays       int       `json:"notice_period_days"`
	KnowledgeTransferTo    string    `json:"knowledge_transfer_to"`
	KnowledgeTransferNotes string    `json:"knowledge_transfer_notes"`
	AssetsReturned         bool      `json:"assets_returned"`
	AssetNotes             string    `json:"asset_notes"`
}

func (r ResignationData) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return errors.New("не указана причина увольнения")
	}
	if r.LastWorkingDay.IsZero() {
		return errors.New("не указан последний рабочий день")
	}
	if r.NoticePeriodDays < 0 {
		return errors.New("срок отработки не может быть отрицательным")
	}
	return nil
}

// ClearanceData - решение подразделения по обходному листу
type ClearanceData struct {
	Department string `json:"department"`
	Approve    bool   `json:"approve"`
	Notes      string `json:"notes"`
}

func (r ClearanceData) Validate() error {
	if r.Department == "" {
		return errors.New("не указано подразделение")
	}
	return nil
}

type ClearanceView struct {
	Status     string     `json:"status"`
	StatusName string     `json:"status_name"`
	ApproverID string     `json:"approver_id,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
}

type ResignationView struct {
	ID                     string                   `json:"id"`
	UserID                 string                   `json:"user_id"`
	UserName               string                   `json:"user_name,omitempty"`
	EmployeeNumber         string                   `json:"employee_number,omitempty"`
	Reason                 string                   `json:"reason"`
	LastWorkingDay         time.Time                `json:"last_working_day"`
	NoticePeriodDays       int                      `json:"notice_period_days"`
	KnowledgeTransferTo    string                   `json:"knowledge_transfer_to,omitempty"`
	KnowledgeTransferNotes string                   `json:"knowledge_transfer_notes,omitempty"`
	AssetsReturned         bool                     `json:"assets_returned"`
	AssetNotes             string                   `json:"asset_notes,omitempty"`
	Status                 string                   `json:"status"`
	StatusName             string                   `json:"status_name"`
	Clearances             map[string]ClearanceView `json:"clearances"`
	CreatedAt              time.Time                `json:"created_at"`
}
