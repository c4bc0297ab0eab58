package vanguard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObject builds a JSON object whose keys keep their insertion order.
// Its zero value is an empty object.
type jsonObject struct {
	keys   []string
	values []any
}

// Append adds key with value, marshaled with json.Marshal.
func (o *jsonObject) Append(key string, value any) {
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

// Optional adds key only if value is not the zero value of its type.
func (o *jsonObject) Optional(key string, value any) {
	if v := reflect.ValueOf(value); v.IsValid() && !v.IsZero() {
		o.Append(key, value)
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (o *jsonObject) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, key := range o.keys {
		value, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, fmt.Errorf("cannot marshal %q: %w", key, err)
		}
		if i > 0 {
			b.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		b.Write(k)
		b.WriteByte(':')
		b.Write(value)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
