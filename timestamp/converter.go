package timestamp

import (
	"fmt"
	"time"

	"symbol.dev/sdk/sdkerr"
)

const (
	rulePrecedesEpoch = "SDK-TIME-001"
	ruleUnit          = "SDK-TIME-002"
)

// Converter maps raw timestamp counts to and from absolute instants.
type Converter struct {
	Epoch time.Time
	Unit  Unit
}

// ToDatetime returns Epoch + count*Unit, in the epoch's location.
func (c Converter) ToDatetime(count int64) time.Time {
	unit := c.Unit.Duration()
	sec, nsec := c.Epoch.Unix(), int64(c.Epoch.Nanosecond())
	if unit >= time.Second {
		sec += count * int64(unit/time.Second)
	} else {
		perSecond := int64(time.Second / unit)
		sec += count / perSecond
		nsec += (count % perSecond) * int64(unit)
	}
	return time.Unix(sec, nsec).In(c.Epoch.Location())
}

// ToDifference returns the number of whole units between Epoch and t.
// Instants before the epoch are out of domain and fail with
// sdkerr.KindPrecedesEpoch.
func (c Converter) ToDifference(t time.Time) (int64, error) {
	if t.Before(c.Epoch) {
		return 0, sdkerr.New(sdkerr.KindPrecedesEpoch, rulePrecedesEpoch,
			fmt.Sprintf("%s precedes network epoch %s", t.UTC().Format(time.RFC3339Nano), c.Epoch.UTC().Format(time.RFC3339)))
	}

	sec := t.Unix() - c.Epoch.Unix()
	nsec := int64(t.Nanosecond() - c.Epoch.Nanosecond())
	if nsec < 0 {
		sec--
		nsec += int64(time.Second)
	}

	unit := c.Unit.Duration()
	if unit >= time.Second {
		return sec / int64(unit/time.Second), nil
	}
	return sec*int64(time.Second/unit) + nsec/int64(unit), nil
}
