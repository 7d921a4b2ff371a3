package schema

import (
	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// NoFormatTemplate is the NO-FORMAT EFLR's attribute template (§4.7). A
// No-Format object describes a blob of unformatted data (UDI) carried in a
// companion IFLR the way a Frame describes the layout of its FrameData.
func NoFormatTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "CONSUMER-NAME", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "DESCRIPTION", ReprCode: reprcode.ASCII, Count: 1},
	}
}

// NoFormatConfig describes one NO-FORMAT object.
type NoFormatConfig struct {
	Name         string
	ConsumerName string
	Description  string
}

// NewNoFormat builds a NO-FORMAT item in template order.
func NewNoFormat(c NoFormatConfig) (*eflr.Item, error) {
	if err := requireName("NO-FORMAT", c.Name); err != nil {
		return nil, err
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.IDENT, c.ConsumerName),
		scalarOrAbsentString(reprcode.ASCII, c.Description),
	}
	return eflr.NewItem(c.Name, values), nil
}
