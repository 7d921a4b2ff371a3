package reprcode

import (
	"fmt"
	"math"
)

// EncodeFixed encodes v, which must be an integer, float, or bool (for
// STATUS), into the fixed-width wire representation of code c. It returns
// an error for variable-width codes; use Encode for those.
func EncodeFixed(c Code, v interface{}) ([]byte, error) {
	switch c {
	case USHORT:
		u, err := toUint64(v)
		if err != nil {
			return nil, err
		}
		if u > math.MaxUint8 {
			return nil, fmt.Errorf("reprcode: %d overflows USHORT", u)
		}
		return []byte{byte(u)}, nil

	case UNORM:
		u, err := toUint64(v)
		if err != nil {
			return nil, err
		}
		if u > math.MaxUint16 {
			return nil, fmt.Errorf("reprcode: %d overflows UNORM", u)
		}
		return []byte{byte(u >> 8), byte(u)}, nil

	case ULONG:
		u, err := toUint64(v)
		if err != nil {
			return nil, err
		}
		if u > math.MaxUint32 {
			return nil, fmt.Errorf("reprcode: %d overflows ULONG", u)
		}
		return []byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}, nil

	case SSHORT:
		s, err := toInt64(v)
		if err != nil {
			return nil, err
		}
		if s < math.MinInt8 || s > math.MaxInt8 {
			return nil, fmt.Errorf("reprcode: %d overflows SSHORT", s)
		}
		return []byte{byte(int8(s))}, nil

	case SNORM:
		s, err := toInt64(v)
		if err != nil {
			return nil, err
		}
		if s < math.MinInt16 || s > math.MaxInt16 {
			return nil, fmt.Errorf("reprcode: %d overflows SNORM", s)
		}
		u := uint16(int16(s))
		return []byte{byte(u >> 8), byte(u)}, nil

	case SLONG:
		s, err := toInt64(v)
		if err != nil {
			return nil, err
		}
		if s < math.MinInt32 || s > math.MaxInt32 {
			return nil, fmt.Errorf("reprcode: %d overflows SLONG", s)
		}
		u := uint32(int32(s))
		return []byte{byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}, nil

	case FSINGL:
		f, err := toFloat64(v)
		if err != nil {
			return nil, err
		}
		bits := math.Float32bits(float32(f))
		return []byte{byte(bits >> 24), byte(bits >> 16), byte(bits >> 8), byte(bits)}, nil

	case FDOUBL:
		f, err := toFloat64(v)
		if err != nil {
			return nil, err
		}
		bits := math.Float64bits(f)
		b := make([]byte, 8)
		for i := 0; i < 8; i++ {
			b[i] = byte(bits >> uint(56-8*i))
		}
		return b, nil

	case STATUS:
		b, ok := v.(bool)
		if !ok {
			u, err := toUint64(v)
			if err != nil {
				return nil, fmt.Errorf("reprcode: STATUS requires bool or 0/1, got %T", v)
			}
			if u != 0 && u != 1 {
				return nil, fmt.Errorf("reprcode: STATUS value must be 0 or 1, got %d", u)
			}
			return []byte{byte(u)}, nil
		}
		if b {
			return []byte{1}, nil
		}
		return []byte{0}, nil

	default:
		return nil, fmt.Errorf("reprcode: %s is not a fixed-width EncodeFixed target", c)
	}
}

func toUint64(v interface{}) (uint64, error) {
	switch n := v.(type) {
	case int:
		return checkedNonNegative(int64(n))
	case int8:
		return checkedNonNegative(int64(n))
	case int16:
		return checkedNonNegative(int64(n))
	case int32:
		return checkedNonNegative(int64(n))
	case int64:
		return checkedNonNegative(n)
	case uint:
		return uint64(n), nil
	case uint8:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	case uint64:
		return n, nil
	default:
		return 0, fmt.Errorf("reprcode: cannot convert %T to an unsigned integer", v)
	}
}

func checkedNonNegative(n int64) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("reprcode: negative value %d cannot be encoded as unsigned", n)
	}
	return uint64(n), nil
}

func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("reprcode: cannot convert %T to a signed integer", v)
	}
}

func toFloat64(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("reprcode: cannot convert %T to a float", v)
	}
}
