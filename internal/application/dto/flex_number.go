package dto

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexNumber is a decimal that tolerates sloppy form input. The invoice
// form lets users type freely, so a quantity or rate may arrive as a JSON
// number, a numeric string, an empty string, null, or garbage. Anything
// that does not parse as a number decodes to zero instead of failing the
// whole request.
type FlexNumber struct {
	decimal.Decimal
}

// NewFlexNumber wraps d.
func NewFlexNumber(d decimal.Decimal) FlexNumber {
	return FlexNumber{Decimal: d}
}

// UnmarshalJSON never returns an error for scalar values: non-numeric
// input becomes zero.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		n.Decimal = decimal.Zero
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			n.Decimal = decimal.Zero
			return nil
		}
		s = strings.TrimSpace(str)
		if s == "" {
			n.Decimal = decimal.Zero
			return nil
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		n.Decimal = decimal.Zero
		return nil
	}
	n.Decimal = d
	return nil
}

// MarshalJSON emits the plain decimal value.
func (n FlexNumber) MarshalJSON() ([]byte, error) {
	return n.Decimal.MarshalJSON()
}
