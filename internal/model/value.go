package model

import (
	"encoding/json"
	"strconv"
)

// Value is a derived number that may be undefined, e.g. before a rolling
// window is fully populated. The zero Value is undefined.
type Value struct {
	v  float64
	ok bool
}

// Some returns a defined Value.
func Some(v float64) Value { return Value{v: v, ok: true} }

// Undefined returns an undefined Value.
func Undefined() Value { return Value{} }

// Get returns the number and whether it is defined.
func (v Value) Get() (float64, bool) { return v.v, v.ok }

// Defined reports whether the value is defined.
func (v Value) Defined() bool { return v.ok }

// Float returns the number, or 0 when undefined. Callers must check Defined first.
func (v Value) Float() float64 { return v.v }

// Ptr returns a pointer to a copy of the number, or nil when undefined.
func (v Value) Ptr() *float64 {
	if !v.ok {
		return nil
	}
	f := v.v
	return &f
}

func (v Value) String() string {
	if !v.ok {
		return "-"
	}
	return strconv.FormatFloat(v.v, 'f', 2, 64)
}

// MarshalJSON encodes an undefined value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.v)
}

// UnmarshalJSON decodes null as undefined.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Some(f)
	return nil
}
