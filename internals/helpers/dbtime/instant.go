// file: internals/helpers/dbtime/instant.go
package dbtime

import (
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const DateLayout = "2006-01-02"

// Instant: waktu dari input JSON. Terima "YYYY-MM-DD" (→ 00:00 UTC) atau RFC3339.
type Instant struct{ time.Time }

// Parse: string kosong → error.
func Parse(s string) (Instant, error) {
	var in Instant
	return in, in.parse(s)
}

func (t *Instant) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("instant: empty value")
	}
	if len(s) == len(DateLayout) {
		tt, err := time.ParseInLocation(DateLayout, s, time.UTC)
		if err != nil {
			return fmt.Errorf("instant: %q is not a date (YYYY-MM-DD)", s)
		}
		t.Time = tt
		return nil
	}
	tt, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("instant: %q is not RFC3339 or YYYY-MM-DD", s)
	}
	t.Time = tt.UTC()
	return nil
}

// Ptr: nil-safe ke *time.Time.
func (t *Instant) Ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

func (t Instant) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(t.UTC().Format(time.RFC3339))
}

func (t *Instant) UnmarshalJSON(b []byte) error {
	var s string
	if err := sonic.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("instant: expected string")
	}
	return t.parse(s)
}
