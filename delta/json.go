package delta

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/npillmayer/rope/text"
)

// MarshalJSON encodes d as a JSON array. A retain is encoded as
// {"r":[line,column]}, a delete as {"d":[line,column]} and an insert as a
// plain string.
func (d Delta) MarshalJSON() ([]byte, error) {
	items := make([]any, len(d.ops))
	for i, op := range d.ops {
		switch op.Kind {
		case OpRetain:
			items[i] = map[string][2]int{"r": {op.Size.Line, op.Size.Column}}
		case OpDelete:
			items[i] = map[string][2]int{"d": {op.Size.Line, op.Size.Column}}
		case OpInsert:
			items[i] = op.Text.String()
		}
	}
	return json.Marshal(items)
}

// UnmarshalJSON decodes the format written by MarshalJSON. The decoded
// operations are normalized. Errors wrap ErrMalformedDelta.
func (d *Delta) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDelta, err)
	}
	var b Builder
	for i, item := range items {
		op, err := decodeOperation(item)
		if err != nil {
			return fmt.Errorf("%w: item #%d: %v", ErrMalformedDelta, i, err)
		}
		b.Push(op)
	}
	*d = b.Build()
	return nil
}

func decodeOperation(item json.RawMessage) (Operation, error) {
	if trimmed := bytes.TrimSpace(item); len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Operation{}, err
		}
		return Insert(text.FromString(s)), nil
	}
	var obj map[string][2]int
	if err := json.Unmarshal(item, &obj); err != nil {
		return Operation{}, err
	}
	if len(obj) != 1 {
		return Operation{}, fmt.Errorf("expected exactly one of \"r\", \"d\", got %d keys", len(obj))
	}
	for key, v := range obj {
		if v[0] < 0 || v[1] < 0 {
			return Operation{}, fmt.Errorf("negative size %v", v)
		}
		s := text.Size{Line: v[0], Column: v[1]}
		switch key {
		case "r":
			return Retain(s), nil
		case "d":
			return Delete(s), nil
		}
		return Operation{}, fmt.Errorf("unknown operation key %q", key)
	}
	panic("unreachable")
}
