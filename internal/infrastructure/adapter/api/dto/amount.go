package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Amount keeps the decimal text of a monetary value sent either as a JSON
// number or as a numeric string. Parsing into cents happens in the domain.
// Exponent forms such as 1e3 or 1.25E2 are expanded to plain decimals when
// the value fits in cents; otherwise they are passed through and rejected.
type Amount string

// UnmarshalJSON accepts 12.5, "12.50" and null
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or numeric string: %w", err)
	}
	*a = Amount(expandExponent(n.String()))
	return nil
}

func expandExponent(number string) string {
	if !strings.ContainsAny(number, "eE") {
		return number
	}
	r, ok := new(big.Rat).SetString(number)
	if !ok {
		return number
	}
	if !new(big.Rat).Mul(r, big.NewRat(100, 1)).IsInt() {
		return number
	}
	return r.FloatString(2)
}
