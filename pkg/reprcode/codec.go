package reprcode

import (
	"fmt"
	"time"
)

// Encode dispatches v to the codec for c, covering every representation
// code a schema in pkg/schema actually produces. Legacy codes with no
// modern producer (FSHORT, FSING1, FSING2, FDOUB1, FDOUB2, ISINGL, VSINGL,
// CSINGL, CDOUBL) are recognized by Code but not implemented here; Encode
// returns an error for them.
func Encode(c Code, v interface{}) ([]byte, error) {
	switch c {
	case UVARI, ORIGIN:
		u, err := toUint64(v)
		if err != nil {
			return nil, err
		}
		return EncodeUVARI(uint32(u))
	case IDENT:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("reprcode: IDENT requires a string, got %T", v)
		}
		return EncodeIdent(s)
	case ASCII:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("reprcode: ASCII requires a string, got %T", v)
		}
		return EncodeASCII(s)
	case UNITS:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("reprcode: UNITS requires a string, got %T", v)
		}
		return EncodeUnits(s)
	case DTIME:
		switch d := v.(type) {
		case DTime:
			return EncodeDTime(d)
		case time.Time:
			return EncodeDTime(DTime{Time: d, TimeZone: TimeZoneLocalStandard})
		default:
			return nil, fmt.Errorf("reprcode: DTIME requires a DTime or time.Time, got %T", v)
		}
	case OBNAME:
		o, ok := v.(OName)
		if !ok {
			return nil, fmt.Errorf("reprcode: OBNAME requires an OName, got %T", v)
		}
		return EncodeOBNAME(o)
	case OBJREF:
		o, ok := v.(ObjRef)
		if !ok {
			return nil, fmt.Errorf("reprcode: OBJREF requires an ObjRef, got %T", v)
		}
		return EncodeOBJREF(o)
	case ATTREF:
		a, ok := v.(AttRef)
		if !ok {
			return nil, fmt.Errorf("reprcode: ATTREF requires an AttRef, got %T", v)
		}
		return EncodeATTREF(a)
	default:
		if _, fixed := FixedWidth(c); fixed {
			return EncodeFixed(c, v)
		}
		return nil, fmt.Errorf("reprcode: %s has no Encode implementation", c)
	}
}
