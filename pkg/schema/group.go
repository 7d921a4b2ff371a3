package schema

import (
	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// GroupTemplate is the GROUP EFLR's attribute template (§4.7).
func GroupTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "DESCRIPTION", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "OBJECT-TYPE", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "OBJECT-LIST", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "GROUP-LIST", ReprCode: reprcode.OBJREF, Count: 0},
	}
}

// GroupConfig describes one GROUP object. GroupList references other
// GROUP objects, letting groups nest.
type GroupConfig struct {
	Name        string
	Description string
	ObjectType  string
	ObjectList  []reprcode.ObjRef
	GroupList   []reprcode.ObjRef
}

// NewGroup builds a GROUP item in template order.
func NewGroup(c GroupConfig) (*eflr.Item, error) {
	if err := requireName("GROUP", c.Name); err != nil {
		return nil, err
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.ASCII, c.Description),
		scalarOrAbsentString(reprcode.IDENT, c.ObjectType),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.ObjectList),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.GroupList),
	}
	return eflr.NewItem(c.Name, values), nil
}
