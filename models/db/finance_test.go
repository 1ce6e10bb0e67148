package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFinance(t *testing.T) {
	t.Run(`сумма к выплате`, func(t *testing.T) {
		rec := Finance{Basic: 100000, Allowances: 15000, Deductions: 13000}
		require.Equal(t, float64(102000), rec.NetAmount())
	})

	t.Run(`валидация периода и сумм`, func(t *testing.T) {
		rec := Finance{UserID: "user", Period: "2025-02", Basic: 100000}
		require.Nil(t, rec.Validate())

		rec.Period = "февраль"
		require.NotNil(t, rec.Validate())

		rec.Period = "2025-02"
		rec.Deductions = -1
		require.NotNil(t, rec.Validate())
	})
}
