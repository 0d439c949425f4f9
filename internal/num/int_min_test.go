package num

import (
	"math"
	"strconv"
	"testing"
)

func TestParseIntMinValues(t *testing.T) {
	for _, bits := range []int{8, 16, 32, 64} {
		minValue := int64(-1) << (bits - 1)
		text := strconv.FormatInt(minValue, 10)
		got, err := ParseInt([]byte(text), bits)
		if err != nil {
			t.Fatalf("ParseInt(%q, %d) error = %v", text, bits, err)
		}
		if got != minValue {
			t.Fatalf("ParseInt(%q, %d) = %d, want %d", text, bits, got, minValue)
		}
	}
	if _, err := ParseInt([]byte("-9223372036854775809"), 64); err == nil || err.Kind != ParseOverflow {
		t.Fatalf("one below MinInt64 error = %v, want overflow", err)
	}
	if got, err := ParseInt([]byte(strconv.FormatInt(math.MaxInt64, 10)), 64); err != nil || got != math.MaxInt64 {
		t.Fatalf("MaxInt64 = %d, %v", got, err)
	}
}
