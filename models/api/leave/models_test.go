package leaveapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLeaveRequestData(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	t.Run(`корректная заявка проходит валидацию`, func(t *testing.T) {
		data := LeaveRequestData{
			LeaveTypeID: "type-id",
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 4),
		}
		require.Nil(t, data.Validate())
		require.Equal(t, 5, data.RequestedDays())
	})

	t.Run(`дата окончания раньше начала - ошибка`, func(t *testing.T) {
		data := LeaveRequestData{
			LeaveTypeID: "type-id",
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, -1),
		}
		require.NotNil(t, data.Validate())
	})

	t.Run(`без типа отпуска - ошибка`, func(t *testing.T) {
		data := LeaveRequestData{StartDate: start, EndDate: start}
		require.NotNil(t, data.Validate())
	})

	t.Run(`некорректные минуты - ошибка`, func(t *testing.T) {
		data := LeaveRequestData{
			LeaveTypeID: "type-id",
			StartDate:   start,
			EndDate:     start,
			Minutes:     60,
		}
		require.NotNil(t, data.Validate())
	})

	t.Run(`заявка на один день`, func(t *testing.T) {
		data := LeaveRequestData{StartDate: start, EndDate: start}
		require.Equal(t, 1, data.RequestedDays())
	})
}

func TestAllotmentValidation(t *testing.T) {
	t.Run(`корректное начисление`, func(t *testing.T) {
		item := AllotmentItem{UserID: "user", LeaveTypeID: "type", Days: 28}
		require.Nil(t, item.Validate())
	})

	t.Run(`начисление только часами допустимо`, func(t *testing.T) {
		item := AllotmentItem{UserID: "user", LeaveTypeID: "type", Hours: 4}
		require.Nil(t, item.Validate())
	})

	t.Run(`нулевое количество - ошибка`, func(t *testing.T) {
		item := AllotmentItem{UserID: "user", LeaveTypeID: "type"}
		require.NotNil(t, item.Validate())
	})

	t.Run(`отрицательные дни - ошибка даже при указанных часах`, func(t *testing.T) {
		item := AllotmentItem{UserID: "user", LeaveTypeID: "type", Days: -5, Hours: 2}
		require.NotNil(t, item.Validate())

		item = AllotmentItem{UserID: "user", LeaveTypeID: "type", Days: -1}
		require.NotNil(t, item.Validate())
	})

	t.Run(`пакет без начислений - ошибка`, func(t *testing.T) {
		req := AllotmentBulkRequest{}
		require.NotNil(t, req.Validate())
	})

	t.Run(`ошибка в пакете содержит номер начисления`, func(t *testing.T) {
		req := AllotmentBulkRequest{Items: []AllotmentItem{
			{UserID: "user", LeaveTypeID: "type", Days: 5},
			{UserID: "user", LeaveTypeID: "", Days: 5},
		}}
		err := req.Validate()
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "начисление №2")
	})

	t.Run(`замена с чужим начислением - ошибка`, func(t *testing.T) {
		req := AllotmentEditRequest{
			UserID: "user-a",
			Items: []AllotmentItem{
				{UserID: "user-b", LeaveTypeID: "type", Days: 5},
			},
		}
		require.NotNil(t, req.Validate())
	})

	t.Run(`замена без явного сотрудника в элементах допустима`, func(t *testing.T) {
		req := AllotmentEditRequest{
			UserID: "user-a",
			Items: []AllotmentItem{
				{LeaveTypeID: "type", Days: 5},
			},
		}
		require.Nil(t, req.Validate())
	})
}
