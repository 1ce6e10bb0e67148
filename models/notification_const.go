package models

// NotificationCode - код события для уведомления
type NotificationCode string

const (
	NotificationLeaveRequested   NotificationCode = "LEAVE_REQUESTED"
	NotificationLeaveApproved    NotificationCode = "LEAVE_APPROVED"
	NotificationLeaveRejected    NotificationCode = "LEAVE_REJECTED"
	NotificationLeaveAllotted    NotificationCode = "LEAVE_ALLOTTED"
	NotificationResignationFiled NotificationCode = "RESIGNATION_FILED"
	NotificationClearanceUpdated NotificationCode = "CLEARANCE_UPDATED"
	NotificationAnnouncement     NotificationCode = "ANNOUNCEMENT"
	NotificationAccountApproved  NotificationCode = "ACCOUNT_APPROVED"
	NotificationPayslipPublished NotificationCode = "PAYSLIP_PUBLISHED"
)
