package models

type LeaveStatus string

const (
	LeavePendingStatus  LeaveStatus = "PENDING"
	LeaveApprovedStatus LeaveStatus = "APPROVED"
	LeaveRejectedStatus LeaveStatus = "REJECTED"
)

var leaveStatusHumanName = map[LeaveStatus]string{
	LeavePendingStatus:  "На рассмотрении",
	LeaveApprovedStatus: "Согласован",
	LeaveRejectedStatus: "Отклонен",
}

func (r LeaveStatus) ToHuman() string {
	if human, exist := leaveStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r LeaveStatus) IsDecided() bool {
	return r == LeaveApprovedStatus || r == LeaveRejectedStatus
}

// LeaveKind - явный признак происхождения записи отпуска.
// PERSONAL - заявка сотрудника, ALLOTTED - начисление HR/администратора.
type LeaveKind string

const (
	LeavePersonalKind LeaveKind = "PERSONAL"
	LeaveAllottedKind LeaveKind = "ALLOTTED"
)

var leaveKindHumanName = map[LeaveKind]string{
	LeavePersonalKind: "Заявка сотрудника",
	LeaveAllottedKind: "Начисление",
}

func (r LeaveKind) ToHuman() string {
	if human, exist := leaveKindHumanName[r]; exist {
		return human
	}
	return string(r)
}
