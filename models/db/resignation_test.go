package dbmodels

import (
	"hrms-backend/models"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResignationOverallStatus(t *testing.T) {
	t.Run(`новое заявление - PENDING`, func(t *testing.T) {
		rec := Resignation{}
		require.Equal(t, models.ResignationPendingStatus, rec.OverallStatus())
	})

	t.Run(`часть подписей согласована - IN_PROGRESS`, func(t *testing.T) {
		rec := Resignation{
			ManagerClearance: Clearance{Status: models.ClearanceApprovedStatus},
			ITClearance:      Clearance{Status: models.ClearanceApprovedStatus},
		}
		require.Equal(t, models.ResignationInProgressStatus, rec.OverallStatus())
	})

	t.Run(`все четыре подписи согласованы - APPROVED`, func(t *testing.T) {
		rec := Resignation{
			ManagerClearance: Clearance{Status: models.ClearanceApprovedStatus},
			ITClearance:      Clearance{Status: models.ClearanceApprovedStatus},
			AdminClearance:   Clearance{Status: models.ClearanceApprovedStatus},
			FinanceClearance: Clearance{Status: models.ClearanceApprovedStatus},
		}
		require.Equal(t, models.ResignationApprovedStatus, rec.OverallStatus())
	})

	t.Run(`любой отказ дает REJECTED даже при остальных согласованиях`, func(t *testing.T) {
		rec := Resignation{
			ManagerClearance: Clearance{Status: models.ClearanceApprovedStatus},
			ITClearance:      Clearance{Status: models.ClearanceRejectedStatus},
			AdminClearance:   Clearance{Status: models.ClearanceApprovedStatus},
			FinanceClearance: Clearance{Status: models.ClearanceApprovedStatus},
		}
		require.Equal(t, models.ResignationRejectedStatus, rec.OverallStatus())
	})

	t.Run(`доступ к подписи по коду подразделения`, func(t *testing.T) {
		rec := Resignation{
			ITClearance: Clearance{Status: models.ClearanceApprovedStatus, ApproverID: "it-user"},
		}
		clearance := rec.ClearanceByDepartment(models.ClearanceIT)
		require.NotNil(t, clearance)
		require.Equal(t, "it-user", clearance.ApproverID)

		require.Nil(t, rec.ClearanceByDepartment(models.ClearanceDepartment("UNKNOWN")))
	})
}
