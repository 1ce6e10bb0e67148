package models

type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN_ROLE"
	UserRoleHR       UserRole = "HR_ROLE"
	UserRoleEmployee UserRole = "EMPLOYEE_ROLE"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin:    "Администратор",
	UserRoleHR:       "HR-специалист",
	UserRoleEmployee: "Сотрудник",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// IsStaff - роли с правом управления заявками и справочниками
func (r UserRole) IsStaff() bool {
	return r == UserRoleAdmin || r == UserRoleHR
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

const SystemUser = "Система"

type UserStatus string

const (
	UserWorkingStatus  UserStatus = "WORKING"
	UserOnLeaveStatus  UserStatus = "ON_LEAVE"
	UserResignedStatus UserStatus = "RESIGNED"
)

var userStatusHumanName = map[UserStatus]string{
	UserWorkingStatus:  "Работает",
	UserOnLeaveStatus:  "В отпуске",
	UserResignedStatus: "Уволен",
}

func (r UserStatus) ToHuman() string {
	if human, exist := userStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}
