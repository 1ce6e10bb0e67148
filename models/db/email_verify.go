package dbmodels

import "time"

// VerifyPurpose - назначение кода: подтверждение почты или сброс пароля
type VerifyPurpose string

const (
	VerifyEmailPurpose   VerifyPurpose = "EMAIL"
	ResetPasswordPurpose VerifyPurpose = "PASSWORD_RESET"
)

type EmailVerify struct {
	Email         string        `gorm:"type:varchar(255)"`
	Code          string        `gorm:"type:varchar(24)"`
	Purpose       VerifyPurpose `gorm:"type:varchar(20)"`
	DateGenerated time.Time
	DateExpires   time.Time
	DateUsed      time.Time
}
