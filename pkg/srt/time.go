package srt

import (
	"fmt"
	"math"
	"time"
)

const (
	maxHours          = 100
	minutesPerHour    = 60
	secondsPerMinute  = 60
	millisPerSecond   = 1000
	maxTotalMillis    = maxHours*minutesPerHour*secondsPerMinute*millisPerSecond - 1
	millisPerDuration = int64(time.Millisecond)
)

// Timestamp is a point in time within a subtitle track, in milliseconds.
//
// The value is always within [0, MaxTimestamp]. Construction and arithmetic
// saturate at both ends instead of wrapping. The zero value is 00:00:00,000.
type Timestamp struct {
	ms uint32
}

// Duration is an elapsed span. It shares the bounds and saturation rules of
// Timestamp.
type Duration = Timestamp

// MaxTimestamp is 99:59:59,999, the largest value the timestamp line can carry.
var MaxTimestamp = Timestamp{ms: maxTotalMillis}

// New composes a timestamp from its components. It reports false if any
// component is outside hours 0..99, minutes 0..59, seconds 0..59, millis 0..999.
func New(hours, minutes, seconds, millis uint) (Timestamp, bool) {
	if hours >= maxHours ||
		minutes >= minutesPerHour ||
		seconds >= secondsPerMinute ||
		millis >= millisPerSecond {
		return Timestamp{}, false
	}

	totalMinutes := hours*minutesPerHour + minutes
	totalSeconds := totalMinutes*secondsPerMinute + seconds
	totalMillis := totalSeconds*millisPerSecond + millis

	return Timestamp{ms: uint32(totalMillis)}, true
}

// FromMillis saturates to MaxTimestamp when total is out of range.
func FromMillis(total uint64) Timestamp {
	if total > maxTotalMillis {
		return MaxTimestamp
	}
	return Timestamp{ms: uint32(total)}
}

// CheckedFromMillis reports false when total is above MaxTimestamp.
func CheckedFromMillis(total uint64) (Timestamp, bool) {
	if total > maxTotalMillis {
		return Timestamp{}, false
	}
	return Timestamp{ms: uint32(total)}, true
}

// FromStd converts a time.Duration, truncating to whole milliseconds.
// Negative durations become zero and large ones saturate.
func FromStd(d time.Duration) Timestamp {
	if d <= 0 {
		return Timestamp{}
	}
	return FromMillis(uint64(int64(d) / millisPerDuration))
}

// Std returns the timestamp as a time.Duration.
func (t Timestamp) Std() time.Duration {
	return time.Duration(t.ms) * time.Millisecond
}

func (t Timestamp) Hours() uint {
	return uint(t.TotalHours())
}

func (t Timestamp) Minutes() uint {
	return uint(t.TotalMinutes() % minutesPerHour)
}

func (t Timestamp) Seconds() uint {
	return uint(t.TotalSeconds() % secondsPerMinute)
}

func (t Timestamp) Millis() uint {
	return uint(t.ms % millisPerSecond)
}

func (t Timestamp) TotalHours() uint32 {
	return t.TotalMinutes() / minutesPerHour
}

func (t Timestamp) TotalMinutes() uint32 {
	return t.TotalSeconds() / secondsPerMinute
}

func (t Timestamp) TotalSeconds() uint32 {
	return t.ms / millisPerSecond
}

func (t Timestamp) TotalMillis() uint32 {
	return t.ms
}

// Add saturates to MaxTimestamp.
func (t Timestamp) Add(d Duration) Timestamp {
	// both operands are <= MaxTimestamp so the sum fits in uint64 trivially
	return FromMillis(uint64(t.ms) + uint64(d.ms))
}

// Sub saturates to zero when d is larger than t.
func (t Timestamp) Sub(d Duration) Timestamp {
	if d.ms > t.ms {
		return Timestamp{}
	}
	return Timestamp{ms: t.ms - d.ms}
}

// Mul scales the timestamp by factor, truncating toward zero.
//
// Negative products, -Inf and NaN clamp to zero. Products above MaxTimestamp
// and +Inf clamp to MaxTimestamp.
func (t Timestamp) Mul(factor float64) Timestamp {
	product := float64(t.ms) * factor
	switch {
	case math.IsNaN(product), product < 0:
		return Timestamp{}
	case product > maxTotalMillis:
		return MaxTimestamp
	}
	return Timestamp{ms: uint32(product)}
}

func (t Timestamp) Equal(other Timestamp) bool {
	return t.ms == other.ms
}

func (t Timestamp) Before(other Timestamp) bool {
	return t.ms < other.ms
}

// Compare returns -1, 0 or +1.
func (t Timestamp) Compare(other Timestamp) int {
	switch {
	case t.ms < other.ms:
		return -1
	case t.ms > other.ms:
		return 1
	}
	return 0
}

// String renders HH:MM:SS,mmm.
func (t Timestamp) String() string {
	return fmt.Sprintf(
		"%02d:%02d:%02d,%03d",
		t.Hours(),
		t.Minutes(),
		t.Seconds(),
		t.Millis(),
	)
}
