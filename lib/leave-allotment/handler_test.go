package leaveallotmenthandler

import (
	leaveapimodels "hrms-backend/models/api/leave"
	dbmodels "hrms-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckTypeKind(t *testing.T) {
	dayType := dbmodels.LeaveType{Name: "Ежегодный отпуск", MaxDays: 28}
	shortType := dbmodels.LeaveType{Name: "Отгул", ShortDay: true}

	t.Run(`обычный отпуск начисляется положительным числом дней`, func(t *testing.T) {
		item := leaveapimodels.AllotmentItem{UserID: "user", LeaveTypeID: "type", Days: 28}
		require.Nil(t, checkTypeKind(dayType, item))
	})

	t.Run(`обычный отпуск только часами - ошибка`, func(t *testing.T) {
		item := leaveapimodels.AllotmentItem{UserID: "user", LeaveTypeID: "type", Hours: 2}
		require.NotNil(t, checkTypeKind(dayType, item))
	})

	t.Run(`отгул начисляется часами`, func(t *testing.T) {
		item := leaveapimodels.AllotmentItem{UserID: "user", LeaveTypeID: "type", Hours: 4}
		require.Nil(t, checkTypeKind(shortType, item))

		item = leaveapimodels.AllotmentItem{UserID: "user", LeaveTypeID: "type", Minutes: 30}
		require.Nil(t, checkTypeKind(shortType, item))
	})

	t.Run(`отгул без времени - ошибка`, func(t *testing.T) {
		item := leaveapimodels.AllotmentItem{UserID: "user", LeaveTypeID: "type", Days: 1}
		require.NotNil(t, checkTypeKind(shortType, item))
	})

	t.Run(`отгул с днями - ошибка`, func(t *testing.T) {
		item := leaveapimodels.AllotmentItem{UserID: "user", LeaveTypeID: "type", Days: 1, Hours: 2}
		require.NotNil(t, checkTypeKind(shortType, item))
	})
}
