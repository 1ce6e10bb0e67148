package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounterFormatValue(t *testing.T) {
	t.Run(`номер дополняется нулями до ширины`, func(t *testing.T) {
		rec := Counter{Prefix: "EMP", Padding: 4, Value: 42}
		require.Equal(t, "EMP0042", rec.FormatValue())
	})

	t.Run(`значение длиннее ширины не обрезается`, func(t *testing.T) {
		rec := Counter{Prefix: "EMP", Padding: 4, Value: 123456}
		require.Equal(t, "EMP123456", rec.FormatValue())
	})
}
