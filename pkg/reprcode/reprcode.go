// Package reprcode implements the 27 RP66 V1 Representation Codes (§3.1,
// §4.1): the fixed-width numeric codecs, the UVARI variable-length unsigned
// integer, DTIME, and the three reference codes (OBNAME, OBJREF, ATTREF).
package reprcode

import "fmt"

// Code identifies one of the 27 RP66 V1 representation codes by its integer
// tag (§3.1). The tag values are part of the wire format and must not
// change.
type Code uint8

const (
	FSHORT Code = 1
	FSINGL Code = 2
	FSING1 Code = 3
	FSING2 Code = 4
	ISINGL Code = 5
	VSINGL Code = 6
	FDOUBL Code = 7
	FDOUB1 Code = 8
	FDOUB2 Code = 9
	CSINGL Code = 10
	CDOUBL Code = 11
	SSHORT Code = 12
	SNORM  Code = 13
	SLONG  Code = 14
	USHORT Code = 15
	UNORM  Code = 16
	ULONG  Code = 17
	UVARI  Code = 18
	IDENT  Code = 19
	ASCII  Code = 20
	DTIME  Code = 21
	ORIGIN Code = 22
	OBNAME Code = 23
	OBJREF Code = 24
	ATTREF Code = 25
	STATUS Code = 26
	UNITS  Code = 27
)

var names = map[Code]string{
	FSHORT: "FSHORT", FSINGL: "FSINGL", FSING1: "FSING1", FSING2: "FSING2",
	ISINGL: "ISINGL", VSINGL: "VSINGL", FDOUBL: "FDOUBL", FDOUB1: "FDOUB1",
	FDOUB2: "FDOUB2", CSINGL: "CSINGL", CDOUBL: "CDOUBL", SSHORT: "SSHORT",
	SNORM: "SNORM", SLONG: "SLONG", USHORT: "USHORT", UNORM: "UNORM",
	ULONG: "ULONG", UVARI: "UVARI", IDENT: "IDENT", ASCII: "ASCII",
	DTIME: "DTIME", ORIGIN: "ORIGIN", OBNAME: "OBNAME", OBJREF: "OBJREF",
	ATTREF: "ATTREF", STATUS: "STATUS", UNITS: "UNITS",
}

func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("Code(%d)", uint8(c))
}

// FixedWidth returns the on-disk size in bytes of a fixed-width
// representation code, and false for codes whose size depends on the
// encoded value (UVARI, IDENT, ASCII, OBNAME, OBJREF, ATTREF, UNITS).
func FixedWidth(c Code) (int, bool) {
	switch c {
	case FSHORT:
		return 2, true
	case FSINGL, ISINGL, VSINGL, SLONG, ULONG:
		return 4, true
	case SNORM, UNORM:
		return 2, true
	case SSHORT, USHORT, STATUS:
		return 1, true
	case FDOUBL, CSINGL, FSING1:
		return 8, true
	case FSING2:
		return 12, true
	case FDOUB1:
		return 16, true
	case FDOUB2:
		return 24, true
	case CDOUBL:
		return 16, true
	case DTIME:
		return 8, true
	case ORIGIN:
		// ORIGIN is encoded exactly like UVARI (§3.1); variable width.
		return 0, false
	default:
		return 0, false
	}
}
