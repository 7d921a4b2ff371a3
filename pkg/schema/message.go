package schema

import (
	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// MessageTemplate is the MESSAGE EFLR's attribute template (§4.7).
func MessageTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "TYPE", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "TIME", ReprCode: reprcode.DTIME, Count: 1},
		{Label: "BOREHOLE-DRIFT", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "VERTICAL-DEPTH", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "RADIAL-DRIFT", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "ANGULAR-DRIFT", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "TEXT", ReprCode: reprcode.ASCII, Count: 0},
	}
}

// MessageConfig describes one MESSAGE object. Time may be a time.Time or a
// float offset, matching the source schema's DTimeAttribute(allow_float).
// The MESSAGE set encodes TIME with its template's DTIME code, so a float
// offset fails when the Writer encodes the set.
type MessageConfig struct {
	Name          string
	Type          string
	Time          interface{}
	BoreholeDrift interface{}
	VerticalDepth interface{}
	RadialDrift   interface{}
	AngularDrift  interface{}
	Text          []string
}

// NewMessage builds a MESSAGE item in template order.
func NewMessage(c MessageConfig) (*eflr.Item, error) {
	if err := requireName("MESSAGE", c.Name); err != nil {
		return nil, err
	}

	timeValue := eflr.Absent(reprcode.DTIME)
	if c.Time != nil {
		code, err := reprcode.Infer(c.Time)
		if err != nil {
			return nil, err
		}
		timeValue = eflr.Scalar(code, c.Time)
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.IDENT, c.Type),
		timeValue,
		numericOrAbsent(c.BoreholeDrift),
		numericOrAbsent(c.VerticalDepth),
		numericOrAbsent(c.RadialDrift),
		numericOrAbsent(c.AngularDrift),
		vectorOrAbsentString(reprcode.ASCII, c.Text),
	}
	return eflr.NewItem(c.Name, values), nil
}

// CommentTemplate is the COMMENT EFLR's attribute template (§4.7).
func CommentTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "TEXT", ReprCode: reprcode.ASCII, Count: 0},
	}
}

// CommentConfig describes one COMMENT object.
type CommentConfig struct {
	Name string
	Text []string
}

// NewComment builds a COMMENT item in template order.
func NewComment(c CommentConfig) (*eflr.Item, error) {
	if err := requireName("COMMENT", c.Name); err != nil {
		return nil, err
	}

	values := []eflr.AttributeValue{
		vectorOrAbsentString(reprcode.ASCII, c.Text),
	}
	return eflr.NewItem(c.Name, values), nil
}
