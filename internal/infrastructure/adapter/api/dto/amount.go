package dto

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FlexibleAmount accepts an amount sent either as a JSON string or a JSON number and keeps
// its decimal text so it can be parsed without float rounding
type FlexibleAmount string

// UnmarshalJSON implements json.Unmarshaler
func (a *FlexibleAmount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = FlexibleAmount(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or a decimal string: %w", err)
	}
	*a = FlexibleAmount(n.String())
	return nil
}

// String returns the decimal text
func (a FlexibleAmount) String() string {
	return string(a)
}
