package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("rounds to cents", func(t *testing.T) {
		require.Equal(t, "10.01", MustMoney("10.005").String())
		require.Equal(t, "0.30", MoneyFromFloat(0.1).Add(MoneyFromFloat(0.2)).String())
	})

	t.Run("split sums exactly", func(t *testing.T) {
		parts := MustMoney("1000000.01").Split(7)
		require.Len(t, parts, 7)
		require.True(t, SumMoney(parts...).Equal(MustMoney("1000000.01")))
		require.Nil(t, MustMoney("1").Split(0))
	})

	t.Run("json accepts strings and numbers", func(t *testing.T) {
		var in struct {
			A Money `json:"a"`
			B Money `json:"b"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a":"12.5","b":7}`), &in))
		require.Equal(t, "12.50", in.A.String())
		require.Equal(t, "7.00", in.B.String())

		out, err := json.Marshal(in.A)
		require.NoError(t, err)
		require.Equal(t, `"12.50"`, string(out))
	})

	t.Run("format", func(t *testing.T) {
		require.Equal(t, "$1,250,000.00", MustMoney("1250000").Format("USD"))
	})
}

func TestDate(t *testing.T) {
	t.Run("normalizes to utc day", func(t *testing.T) {
		loc := time.FixedZone("UTC+10", 10*60*60)
		local := time.Date(2024, 3, 1, 8, 0, 0, 0, loc)
		require.Equal(t, "2024-02-29", DateOf(local).String())
		require.Equal(t, NewDate(2024, 2, 29), DateOf(local))
	})

	t.Run("add months clamps", func(t *testing.T) {
		require.Equal(t, "2023-02-28", MustDate("2023-01-31").AddMonths(1).String())
		require.Equal(t, "2024-11-30", MustDate("2024-08-31").AddMonths(3).String())
		require.Equal(t, "2025-01-15", MustDate("2024-10-15").AddMonths(3).String())
	})

	t.Run("days since", func(t *testing.T) {
		require.Equal(t, 366, MustDate("2025-01-01").DaysSince(MustDate("2024-01-01")))
		require.Equal(t, -10, MustDate("2024-01-01").DaysSince(MustDate("2024-01-11")))
	})

	t.Run("json", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-05-06"`), &d))
		require.Equal(t, NewDate(2024, 5, 6), d)
		require.Error(t, json.Unmarshal([]byte(`"05/06/2024"`), &d))
	})
}
