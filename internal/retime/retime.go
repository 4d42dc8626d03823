package retime

import (
	"fmt"
	"math"
	"time"

	"github.com/mgpai22/srtkit/pkg/srt"
)

// Shift moves every start by offset, saturating at 0 and 99:59:59,999.
// Durations are left alone. The input slice is not modified.
func Shift(subs []srt.Subtitle, offset time.Duration) []srt.Subtitle {
	out := make([]srt.Subtitle, len(subs))
	for i, sub := range subs {
		if offset >= 0 {
			sub.Start = sub.Start.Add(srt.FromStd(offset))
		} else {
			sub.Start = sub.Start.Sub(negated(offset))
		}
		out[i] = sub
	}
	return out
}

// ShiftMillis is Shift with a signed millisecond offset.
func ShiftMillis(subs []srt.Subtitle, ms int64) []srt.Subtitle {
	out := make([]srt.Subtitle, len(subs))
	for i, sub := range subs {
		if ms >= 0 {
			sub.Start = sub.Start.Add(srt.FromMillis(uint64(ms)))
		} else {
			sub.Start = sub.Start.Sub(srt.FromMillis(absMillis(ms)))
		}
		out[i] = sub
	}
	return out
}

// Scale multiplies start and duration of every record by factor.
func Scale(subs []srt.Subtitle, factor float64) []srt.Subtitle {
	out := make([]srt.Subtitle, len(subs))
	for i, sub := range subs {
		sub.Start = sub.Start.Mul(factor)
		sub.Duration = sub.Duration.Mul(factor)
		out[i] = sub
	}
	return out
}

// ValidateFactor rejects factors that would collapse or blow up every
// timestamp. Scale itself accepts them and clamps.
func ValidateFactor(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("scale factor must be finite, got %v", factor)
	}
	if factor <= 0 {
		return fmt.Errorf("scale factor must be positive, got %v", factor)
	}
	return nil
}

func negated(d time.Duration) srt.Duration {
	if d == math.MinInt64 {
		return srt.MaxTimestamp
	}
	return srt.FromStd(-d)
}

func absMillis(ms int64) uint64 {
	if ms == math.MinInt64 {
		return math.MaxInt64
	}
	return uint64(-ms)
}
