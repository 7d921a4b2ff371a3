package reprcode

import "fmt"

// EncodeIdent encodes s as IDENT: a one-byte USHORT length followed by the
// raw ASCII bytes. The length is capped at 255 (§4.1).
func EncodeIdent(s string) ([]byte, error) {
	if len(s) > 255 {
		return nil, fmt.Errorf("reprcode: IDENT %q exceeds the 255-byte length limit", s)
	}
	b := make([]byte, 1+len(s))
	b[0] = byte(len(s))
	copy(b[1:], s)
	return b, nil
}

// EncodeASCII encodes s as ASCII: a UVARI length followed by the raw bytes.
// Unlike IDENT there is no 255-byte cap, only UVARI's own 2^30-1 ceiling.
func EncodeASCII(s string) ([]byte, error) {
	lenBytes, err := EncodeUVARI(uint32(len(s)))
	if err != nil {
		return nil, fmt.Errorf("reprcode: ASCII length: %w", err)
	}
	b := make([]byte, 0, len(lenBytes)+len(s))
	b = append(b, lenBytes...)
	b = append(b, s...)
	return b, nil
}

// EncodeUnits encodes s as UNITS, which shares ASCII's UVARI-length-prefixed
// wire layout but restricts the character set (enforced by pkg/validation,
// not here).
func EncodeUnits(s string) ([]byte, error) {
	return EncodeASCII(s)
}

// DecodeIdent reads one IDENT value from the front of b.
func DecodeIdent(b []byte) (string, int, error) {
	if len(b) < 1 {
		return "", 0, fmt.Errorf("reprcode: empty buffer for IDENT")
	}
	n := int(b[0])
	if len(b) < 1+n {
		return "", 0, fmt.Errorf("reprcode: truncated IDENT, want %d bytes", n)
	}
	return string(b[1 : 1+n]), 1 + n, nil
}

// DecodeASCII reads one ASCII value from the front of b.
func DecodeASCII(b []byte) (string, int, error) {
	n, consumed, err := DecodeUVARI(b)
	if err != nil {
		return "", 0, err
	}
	if len(b) < consumed+int(n) {
		return "", 0, fmt.Errorf("reprcode: truncated ASCII, want %d bytes", n)
	}
	return string(b[consumed : consumed+int(n)]), consumed + int(n), nil
}
