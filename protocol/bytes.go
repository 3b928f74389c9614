package protocol

import (
	"strconv"
)

// ToBytes converts a command value into its canonical byte form.
//
// Accepted shapes:
//   - []byte: returned unchanged
//   - nil: empty
//   - string: UTF-8 bytes
//   - []int: one byte per element (values are expected to fit in a byte)
//   - integer and float scalars: decimal text, UTF-8 encoded
//
// Any other type fails with an InvalidInputError.
func ToBytes(v any) ([]byte, error) {
	switch c := v.(type) {
	case []byte:
		return c, nil
	case nil:
		return []byte{}, nil
	case string:
		return []byte(c), nil
	case []int:
		b := make([]byte, len(c))
		for i, n := range c {
			b[i] = byte(n)
		}
		return b, nil
	case int:
		return strconv.AppendInt(nil, int64(c), 10), nil
	case int8:
		return strconv.AppendInt(nil, int64(c), 10), nil
	case int16:
		return strconv.AppendInt(nil, int64(c), 10), nil
	case int32:
		return strconv.AppendInt(nil, int64(c), 10), nil
	case int64:
		return strconv.AppendInt(nil, c, 10), nil
	case uint:
		return strconv.AppendUint(nil, uint64(c), 10), nil
	case uint8:
		return strconv.AppendUint(nil, uint64(c), 10), nil
	case uint16:
		return strconv.AppendUint(nil, uint64(c), 10), nil
	case uint32:
		return strconv.AppendUint(nil, uint64(c), 10), nil
	case uint64:
		return strconv.AppendUint(nil, c, 10), nil
	case float32:
		return strconv.AppendFloat(nil, float64(c), 'g', -1, 32), nil
	case float64:
		return strconv.AppendFloat(nil, c, 'g', -1, 64), nil
	default:
		return nil, &InvalidInputError{Value: v}
	}
}
