package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FactorKind tags the variant held by a FactorValue.
type FactorKind string

const (
	FactorNull   FactorKind = "null"
	FactorString FactorKind = "string"
	FactorNumber FactorKind = "number"
	FactorBool   FactorKind = "bool"
	FactorList   FactorKind = "list"
	FactorObject FactorKind = "object"
)

// FactorValue is one entry of the free-form factors object returned by the
// AI predictor. Exactly one field matching Kind is meaningful.
type FactorValue struct {
	Kind   FactorKind
	String string
	Number float64
	Bool   bool
	List   []FactorValue
	Object map[string]FactorValue
}

// Factors maps factor names (category, person_avg, ...) to their values.
type Factors map[string]FactorValue

// StringFactor builds a string-valued factor.
func StringFactor(s string) FactorValue { return FactorValue{Kind: FactorString, String: s} }

// NumberFactor builds a number-valued factor.
func NumberFactor(n float64) FactorValue { return FactorValue{Kind: FactorNumber, Number: n} }

// Text returns the string value of key, or "" when absent or not a string.
func (f Factors) Text(key string) string {
	v, ok := f[key]
	if !ok || v.Kind != FactorString {
		return ""
	}
	return v.String
}

// MarshalJSON encodes the active variant as plain JSON.
func (v FactorValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case FactorString:
		return json.Marshal(v.String)
	case FactorNumber:
		return json.Marshal(v.Number)
	case FactorBool:
		return json.Marshal(v.Bool)
	case FactorList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	case FactorObject:
		if v.Object == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.Object)
	case FactorNull, "":
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("unknown factor kind %q", v.Kind)
	}
}

// UnmarshalJSON decodes any JSON value into the matching variant.
func (v *FactorValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty factor value")
	}

	switch data[0] {
	case 'n':
		*v = FactorValue{Kind: FactorNull}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FactorValue{Kind: FactorString, String: s}
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = FactorValue{Kind: FactorBool, Bool: b}
		return nil
	case '[':
		var list []FactorValue
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*v = FactorValue{Kind: FactorList, List: list}
		return nil
	case '{':
		var obj map[string]FactorValue
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*v = FactorValue{Kind: FactorObject, Object: obj}
		return nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = FactorValue{Kind: FactorNumber, Number: n}
		return nil
	}
}
