package models

type ClearanceStatus string

const (
	ClearancePendingStatus  ClearanceStatus = "PENDING"
	ClearanceApprovedStatus ClearanceStatus = "APPROVED"
	ClearanceRejectedStatus ClearanceStatus = "REJECTED"
)

var clearanceStatusHumanName = map[ClearanceStatus]string{
	ClearancePendingStatus:  "Ожидает согласования",
	ClearanceApprovedStatus: "Согласовано",
	ClearanceRejectedStatus: "Отклонено",
}

func (r ClearanceStatus) ToHuman() string {
	if human, exist := clearanceStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r ClearanceStatus) IsDecided() bool {
	return r == ClearanceApprovedStatus || r == ClearanceRejectedStatus
}

// ResignationStatus - сводный статус процесса увольнения,
// вычисляется по статусам обходного листа
type ResignationStatus string

const (
	ResignationPendingStatus    ResignationStatus = "PENDING"
	ResignationInProgressStatus ResignationStatus = "IN_PROGRESS"
	ResignationApprovedStatus   ResignationStatus = "APPROVED"
	ResignationRejectedStatus   ResignationStatus = "REJECTED"
)

var resignationStatusHumanName = map[ResignationStatus]string{
	ResignationPendingStatus:    "Ожидает обработки",
	ResignationInProgressStatus: "В работе",
	ResignationApprovedStatus:   "Согласовано",
	ResignationRejectedStatus:   "Отклонено",
}

func (r ResignationStatus) ToHuman() string {
	if human, exist := resignationStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}

// ClearanceDepartment - подразделения, подписывающие обходной лист
type ClearanceDepartment string

const (
	ClearanceReportingManager ClearanceDepartment = "REPORTING_MANAGER"
	ClearanceIT               ClearanceDepartment = "IT"
	ClearanceAdmin            ClearanceDepartment = "ADMIN"
	ClearanceFinance          ClearanceDepartment = "FINANCE"
)

func (r ClearanceDepartment) IsValid() bool {
	switch r {
	case ClearanceReportingManager, ClearanceIT, ClearanceAdmin, ClearanceFinance:
		return true
	}
	return false
}
