package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"symbol.dev/sdk/sdkerr"
)

func date(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func hoursConverter() Converter {
	return Converter{Epoch: date(2020, 1, 2, 3, 0, 0), Unit: UnitHours}
}

func TestToDatetime(t *testing.T) {
	c := hoursConverter()

	require.True(t, date(2020, 1, 2, 3, 0, 0).Equal(c.ToDatetime(0)))
	require.True(t, date(2020, 1, 2, 8, 0, 0).Equal(c.ToDatetime(5)))
	require.Equal(t, time.UTC, c.ToDatetime(5).Location())
}

func TestToDifference(t *testing.T) {
	c := hoursConverter()

	n, err := c.ToDifference(date(2020, 1, 2, 3, 0, 0))
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = c.ToDifference(date(2020, 1, 2, 8, 0, 0))
	require.NoError(t, err)
	require.Equal(t, int64(5), n)

	n, err = c.ToDifference(date(2020, 1, 2, 8, 59, 59))
	require.NoError(t, err)
	require.Equal(t, int64(5), n, "partial units are truncated")
}

func TestToDifferenceBeforeEpoch(t *testing.T) {
	c := hoursConverter()

	_, err := c.ToDifference(date(2020, 1, 2, 2, 0, 0))
	require.Error(t, err)
	require.True(t, sdkerr.IsKind(err, sdkerr.KindPrecedesEpoch))
	require.Equal(t, "SDK-TIME-001", sdkerr.RuleID(err))

	_, err = c.ToDifference(c.Epoch.Add(-time.Nanosecond))
	require.True(t, sdkerr.IsKind(err, sdkerr.KindPrecedesEpoch))
}

func TestMillisecondsSubSecond(t *testing.T) {
	c := Converter{Epoch: date(2021, 3, 16, 0, 6, 25), Unit: UnitMilliseconds}

	got := c.ToDatetime(1500)
	require.True(t, date(2021, 3, 16, 0, 6, 26).Add(500*time.Millisecond).Equal(got))

	n, err := c.ToDifference(got.Add(999 * time.Microsecond))
	require.NoError(t, err)
	require.Equal(t, int64(1500), n)

	require.True(t, date(2021, 3, 16, 0, 6, 23).Add(999*time.Millisecond).Equal(c.ToDatetime(-1001)))
}

func TestRoundTripOfAlignedInstants(t *testing.T) {
	for _, unit := range []Unit{UnitHours, UnitSeconds, UnitMilliseconds} {
		t.Run(unit.String(), func(t *testing.T) {
			c := Converter{Epoch: date(2015, 3, 29, 0, 6, 25), Unit: unit}
			rapid.Check(t, func(t *rapid.T) {
				count := rapid.Int64Range(0, 1<<34).Draw(t, "count")
				instant := c.ToDatetime(count)

				back, err := c.ToDifference(instant)
				require.NoError(t, err)
				require.Equal(t, count, back)
				require.True(t, instant.Equal(c.ToDatetime(back)))
			})
		})
	}
}
