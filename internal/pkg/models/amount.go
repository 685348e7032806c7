package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a decimal money value that tolerates both bare numbers and
// quoted numeric strings on the wire. The billing service is
// currency-agnostic; rendering as INR happens at display time.
type Amount float64

// UnmarshalJSON accepts 120, 120.5 and "120.50".
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	*a = Amount(v)
	return nil
}

// MarshalJSON always emits a bare number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

// Float64 returns the underlying value.
func (a Amount) Float64() float64 {
	return float64(a)
}
