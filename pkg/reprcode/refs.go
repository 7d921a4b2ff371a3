package reprcode

import "fmt"

// OName identifies an EFLRItem within a file: an ORIGIN-valued origin
// reference, a copy number distinguishing items that otherwise share a
// name, and an IDENT name (§3.2, §4.1).
type OName struct {
	OriginReference uint32
	CopyNumber      uint8
	Name            string
}

// EncodeOBNAME packs an OName as origin-reference (UVARI) + copy-number
// (USHORT) + name (IDENT).
func EncodeOBNAME(o OName) ([]byte, error) {
	originBytes, err := EncodeUVARI(o.OriginReference)
	if err != nil {
		return nil, fmt.Errorf("reprcode: OBNAME origin reference: %w", err)
	}
	nameBytes, err := EncodeIdent(o.Name)
	if err != nil {
		return nil, fmt.Errorf("reprcode: OBNAME name: %w", err)
	}
	b := make([]byte, 0, len(originBytes)+1+len(nameBytes))
	b = append(b, originBytes...)
	b = append(b, byte(o.CopyNumber))
	b = append(b, nameBytes...)
	return b, nil
}

// DecodeOBNAME reads one OBNAME from the front of b.
func DecodeOBNAME(b []byte) (OName, int, error) {
	origin, n1, err := DecodeUVARI(b)
	if err != nil {
		return OName{}, 0, err
	}
	if len(b) < n1+1 {
		return OName{}, 0, fmt.Errorf("reprcode: truncated OBNAME copy number")
	}
	copyNum := b[n1]
	name, n2, err := DecodeIdent(b[n1+1:])
	if err != nil {
		return OName{}, 0, err
	}
	return OName{OriginReference: origin, CopyNumber: copyNum, Name: name}, n1 + 1 + n2, nil
}

// ObjRef identifies an object belonging to a set of a given type: the
// IDENT set type of its parent EFLRSet, plus its OBNAME (§4.1).
type ObjRef struct {
	SetType string
	Name    OName
}

// EncodeOBJREF packs an ObjRef as IDENT(set type) + OBNAME(name).
func EncodeOBJREF(o ObjRef) ([]byte, error) {
	setTypeBytes, err := EncodeIdent(o.SetType)
	if err != nil {
		return nil, fmt.Errorf("reprcode: OBJREF set type: %w", err)
	}
	nameBytes, err := EncodeOBNAME(o.Name)
	if err != nil {
		return nil, fmt.Errorf("reprcode: OBJREF name: %w", err)
	}
	b := make([]byte, 0, len(setTypeBytes)+len(nameBytes))
	b = append(b, setTypeBytes...)
	b = append(b, nameBytes...)
	return b, nil
}

// AttRef identifies a single attribute of a referenced object: an ObjRef
// plus the IDENT label of the attribute (§4.1).
type AttRef struct {
	Object        ObjRef
	AttributeName string
}

// EncodeATTREF packs an AttRef as OBJREF + IDENT(attribute label).
func EncodeATTREF(a AttRef) ([]byte, error) {
	objBytes, err := EncodeOBJREF(a.Object)
	if err != nil {
		return nil, err
	}
	attrBytes, err := EncodeIdent(a.AttributeName)
	if err != nil {
		return nil, fmt.Errorf("reprcode: ATTREF attribute name: %w", err)
	}
	b := make([]byte, 0, len(objBytes)+len(attrBytes))
	b = append(b, objBytes...)
	b = append(b, attrBytes...)
	return b, nil
}
