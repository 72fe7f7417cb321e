package gateway

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Millis is an epoch timestamp or a duration in milliseconds. The gateway is
// not consistent about the encoding: it may send an integer, a fractional
// number, a numeric string or an RFC3339 timestamp. Fractions are rounded to
// the nearest millisecond. Values that cannot be read decode to zero, which
// the reshape renders as a placeholder, so one odd field never fails the
// whole list.
type Millis int64

func (m *Millis) UnmarshalJSON(data []byte) error {
	*m = 0

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*m = parseMillisString(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	*m = roundMillis(f)
	return nil
}

// Int64 returns the value as plain milliseconds
func (m Millis) Int64() int64 {
	return int64(m)
}

func parseMillisString(s string) Millis {
	if s == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return roundMillis(f)
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Millis(t.UnixMilli())
	}
	return 0
}

func roundMillis(f float64) Millis {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return Millis(math.Round(f))
}
