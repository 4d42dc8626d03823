package retime

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mgpai22/srtkit/pkg/srt"
)

func sample() []srt.Subtitle {
	return []srt.Subtitle{
		{Start: srt.FromMillis(50), Duration: srt.FromMillis(1000), Text: "a"},
		{Start: srt.FromMillis(2000), Duration: srt.FromMillis(500), Text: "b"},
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		name   string
		offset time.Duration
		want   []uint32
	}{
		{"forward", 100 * time.Millisecond, []uint32{150, 2100}},
		{"backward saturates at zero", -100 * time.Millisecond, []uint32{0, 1900}},
		{"zero", 0, []uint32{50, 2000}},
		{"far forward saturates", 1000 * time.Hour, []uint32{
			srt.MaxTimestamp.TotalMillis(),
			srt.MaxTimestamp.TotalMillis(),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sample()
			got := Shift(in, tt.offset)
			for i, sub := range got {
				if sub.Start.TotalMillis() != tt.want[i] {
					t.Errorf("record %d start = %d, want %d",
						i, sub.Start.TotalMillis(), tt.want[i])
				}
				if !sub.Duration.Equal(in[i].Duration) {
					t.Errorf("record %d duration changed", i)
				}
			}
			if diff := cmp.Diff(sample(), in); diff != "" {
				t.Errorf("input was modified (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShiftMillisMatchesShift(t *testing.T) {
	for _, ms := range []int64{-3000, -100, 0, 100, 3000, math.MinInt64, math.MaxInt64} {
		got := ShiftMillis(sample(), ms)
		var want []srt.Subtitle
		switch {
		case ms == math.MinInt64:
			want = Shift(sample(), time.Duration(math.MinInt64))
		case ms == math.MaxInt64:
			want = Shift(sample(), time.Duration(math.MaxInt64))
		default:
			want = Shift(sample(), time.Duration(ms)*time.Millisecond)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ShiftMillis(%d) mismatch (-want +got):\n%s", ms, diff)
		}
	}
}

func TestScale(t *testing.T) {
	got := Scale(sample(), 2)
	want := []srt.Subtitle{
		{Start: srt.FromMillis(100), Duration: srt.FromMillis(2000), Text: "a"},
		{Start: srt.FromMillis(4000), Duration: srt.FromMillis(1000), Text: "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scale mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateFactor(t *testing.T) {
	tests := []struct {
		factor  float64
		wantErr bool
	}{
		{1.25, false},
		{0.5, false},
		{0, true},
		{-1, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}
	for _, tt := range tests {
		err := ValidateFactor(tt.factor)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFactor(%v) error = %v, wantErr %v", tt.factor, err, tt.wantErr)
		}
	}
}
