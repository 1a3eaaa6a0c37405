package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Entero is a count submitted by the dispatch form. Empty strings, null and
// anything non-numeric decode to zero instead of failing the whole request.
// So do negative values and values beyond an INTEGER column.
type Entero int

const maxEntero = math.MaxInt32

func enteroDe(f float64) Entero {
	if math.IsNaN(f) || f < 0 || f > maxEntero {
		return 0
	}
	return Entero(int(f))
}

func (e *Entero) UnmarshalJSON(b []byte) error {
	*e = 0
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		*e = enteroDe(v)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*e = enteroDe(f)
		}
	}
	return nil
}

// Decimal is a weight in kilograms with the same zero-coercion rules as Entero.
// A comma is accepted as decimal separator.
type Decimal struct {
	decimal.Decimal
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	d.Decimal = decimal.Zero
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		d.Decimal = decimal.NewFromFloat(v)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		if parsed, err := decimal.NewFromString(s); err == nil {
			d.Decimal = parsed
		}
	}
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return d.Decimal.MarshalJSON()
}

// Marca is a checkbox. true, "X", "x", "SI" and "on" mean checked.
type Marca bool

func (m *Marca) UnmarshalJSON(b []byte) error {
	*m = false
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case bool:
		*m = Marca(v)
	case string:
		switch strings.ToUpper(strings.TrimSpace(v)) {
		case "X", "SI", "ON", "TRUE":
			*m = true
		}
	}
	return nil
}
