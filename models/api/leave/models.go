package leaveapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type LeaveTypeData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxDays     int    `json:"max_days"`
	ShortDay    bool   `json:"short_day"`
}

func (r LeaveTypeData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано название типа отпуска")
	}
	if r.MaxDays < 0 {
		return errors.New("максимум дней не может быть отрицательным")
	}
	return nil
}

type LeaveTypeView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MaxDays     int    `json:"max_days"`
	ShortDay    bool   `json:"short_day"`
}

// LeaveRequestData - заявка сотрудника на отпуск
type LeaveRequestData struct {
	LeaveTypeID string    `json:"leave_type_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Hours       int       `json:"hours"`
	Minutes     int       `json:"minutes"`
	Reason      string    `json:"reason"`
}

func (r LeaveRequestData) Validate() error {
	if r.LeaveTypeID == "" {
		return errors.New("не указан тип отпуска")
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return errors.New("не указаны даты отпуска")
	}
	if r.EndDate.Before(r.StartDate) {
		return errors.New("дата окончания раньше даты начала")
	}
	if r.Hours < 0 || r.Minutes < 0 || r.Minutes > 59 {
		return errors.New("некорректно указано время")
	}
	return nil
}

// RequestedDays - число календарных дней заявки, включая границы
func (r LeaveRequestData) RequestedDays() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

type LeaveView struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	UserName        string     `json:"user_name,omitempty"`
	LeaveTypeID     string     `json:"leave_type_id"`
	LeaveTypeName   string     `json:"leave_type_name,omitempty"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	Days            int        `json:"days"`
	Hours           int        `json:"hours,omitempty"`
	Minutes         int        `json:"minutes,omitempty"`
	Reason          string     `json:"reason,omitempty"`
	Status          string     `json:"status"`
	StatusName      string     `json:"status_name"`
	Kind            string     `json:"kind"`
	AllottedBy      string     `json:"allotted_by,omitempty"`
	DecidedBy       string     `json:"decided_by,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	SystemGenerated bool       `json:"system_generated"`
	RejectReason    string     `json:"reject_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type DecisionRequest struct {
	Comment string `json:"comment"`
}

type LeaveFilter struct {
	UserID string `json:"user_id"`
	Status string `json:"status"`
}

// AllotmentItem - одно начисление: сотрудник, тип отпуска и количество
type AllotmentItem struct {
	UserID      string `json:"user_id"`
	LeaveTypeID string `json:"leave_type_id"`
	Days        int    `json:"days"`
	Hours       int    `json:"hours"`
	Minutes     int    `json:"minutes"`
}

type AllotmentBulkRequest struct {
	Items []AllotmentItem `json:"items"`
}

func (r AllotmentBulkRequest) Validate() error {
	if len(r.Items) == 0 {
		return errors.New("не указаны начисления")
	}
	for idx, item := range r.Items {
		if err := item.Validate(); err != nil {
			return errors.Wrapf(err, "начисление №%d", idx+1)
		}
	}
	return nil
}

func (r AllotmentItem) Validate() error {
	if r.UserID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.LeaveTypeID == "" {
		return errors.New("не указан тип отпуска")
	}
	if r.Days < 0 {
		return errors.New("количество дней не может быть отрицательным")
	}
	if r.Hours < 0 || r.Minutes < 0 || r.Minutes > 59 {
		return errors.New("некорректно указано время")
	}
	if r.Days == 0 && r.Hours == 0 && r.Minutes == 0 {
		return errors.New("количество должно быть положительным")
	}
	return nil
}

// AllotmentEditRequest - замена набора начислений одного сотрудника
type AllotmentEditRequest struct {
	UserID string          `json:"user_id"`
	Items  []AllotmentItem `json:"items"`
}

func (r AllotmentEditRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("не указан сотрудник")
	}
	if len(r.Items) == 0 {
		return errors.New("не указаны начисления")
	}
	for idx, item := range r.Items {
		if item.UserID != "" && item.UserID != r.UserID {
			return errors.Errorf("начисление №%d относится к другому сотруднику", idx+1)
		}
		item.UserID = r.UserID
		if err := item.Validate(); err != nil {
			return errors.Wrapf(err, "начисление №%d", idx+1)
		}
	}
	return nil
}

// AllotmentReport - итог пакетной операции начисления
type AllotmentReport struct {
	Created int      `json:"created"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}
