// Package timestamp implements network timestamps: signed integer offsets
// from a network epoch, counted in the network's native unit.
package timestamp

import (
	"fmt"
	"strconv"
	"time"

	"symbol.dev/sdk/sdkerr"
)

// Unit is the resolution of a network timestamp.
type Unit int

const (
	UnitHours Unit = iota
	UnitSeconds
	UnitMilliseconds
)

// Duration returns the length of one unit.
func (u Unit) Duration() time.Duration {
	switch u {
	case UnitHours:
		return time.Hour
	case UnitSeconds:
		return time.Second
	case UnitMilliseconds:
		return time.Millisecond
	default:
		panic(fmt.Sprintf("timestamp: unknown unit %d", int(u)))
	}
}

func (u Unit) String() string {
	switch u {
	case UnitHours:
		return "hours"
	case UnitSeconds:
		return "seconds"
	case UnitMilliseconds:
		return "milliseconds"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Timestamp is implemented by Seconds and Milliseconds.
type Timestamp interface {
	// Count returns the raw offset from the epoch.
	Count() int64
	Unit() Unit
	// IsEpochal reports whether the timestamp is the epoch itself.
	IsEpochal() bool
	String() string
}

var (
	_ Timestamp = Seconds(0)
	_ Timestamp = Milliseconds(0)
)

// New wraps count in the timestamp type matching unit.
func New(unit Unit, count int64) (Timestamp, error) {
	switch unit {
	case UnitSeconds:
		return Seconds(count), nil
	case UnitMilliseconds:
		return Milliseconds(count), nil
	default:
		return nil, sdkerr.New(sdkerr.KindUnitMismatch, ruleUnit, fmt.Sprintf("no timestamp type with %s resolution", unit))
	}
}

// Seconds is a timestamp with one-second resolution.
type Seconds int64

func (s Seconds) Count() int64    { return int64(s) }
func (s Seconds) Unit() Unit      { return UnitSeconds }
func (s Seconds) IsEpochal() bool { return s == 0 }
func (s Seconds) String() string  { return strconv.FormatInt(int64(s), 10) }

// AddSeconds returns s advanced by count seconds.
func (s Seconds) AddSeconds(count int64) Seconds {
	return s + Seconds(count)
}

// AddMinutes returns s advanced by count minutes.
func (s Seconds) AddMinutes(count int64) Seconds {
	return s.AddSeconds(60 * count)
}

// AddHours returns s advanced by count hours.
func (s Seconds) AddHours(count int64) Seconds {
	return s.AddMinutes(60 * count)
}

// Milliseconds is a timestamp with one-millisecond resolution.
type Milliseconds int64

func (m Milliseconds) Count() int64    { return int64(m) }
func (m Milliseconds) Unit() Unit      { return UnitMilliseconds }
func (m Milliseconds) IsEpochal() bool { return m == 0 }
func (m Milliseconds) String() string  { return strconv.FormatInt(int64(m), 10) }

// AddMilliseconds returns m advanced by count milliseconds.
func (m Milliseconds) AddMilliseconds(count int64) Milliseconds {
	return m + Milliseconds(count)
}

// AddSeconds returns m advanced by count seconds.
func (m Milliseconds) AddSeconds(count int64) Milliseconds {
	return m.AddMilliseconds(1000 * count)
}

// AddMinutes returns m advanced by count minutes.
func (m Milliseconds) AddMinutes(count int64) Milliseconds {
	return m.AddSeconds(60 * count)
}

// AddHours returns m advanced by count hours.
func (m Milliseconds) AddHours(count int64) Milliseconds {
	return m.AddMinutes(60 * count)
}
