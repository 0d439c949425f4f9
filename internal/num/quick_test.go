package num

import (
	"math"
	"strconv"
	"testing"
	"testing/quick"
)

func TestQuickIntRoundTrip(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v int64) bool {
		got, err := ParseInt(strconv.AppendInt(nil, v, 10), 64)
		return err == nil && got == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickInt32Range(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v int64) bool {
		got, err := ParseInt(strconv.AppendInt(nil, v, 10), 32)
		if v < math.MinInt32 || v > math.MaxInt32 {
			return err != nil && err.Kind == ParseOverflow
		}
		return err == nil && got == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickFloatRoundTrip(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v float64) bool {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return true
		}
		got, err := ParseFloat(strconv.AppendFloat(nil, v, 'g', -1, 64), 64)
		return err == nil && got == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}
