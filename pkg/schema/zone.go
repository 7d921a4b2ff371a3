package schema

import (
	"fmt"

	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// ZoneDomains are the allowed values for a Zone's DOMAIN attribute (§4.7).
var ZoneDomains = []string{"BOREHOLE-DEPTH", "TIME", "VERTICAL-DEPTH"}

// ValidZoneDomain reports whether s is one of ZoneDomains.
func ValidZoneDomain(s string) bool {
	for _, d := range ZoneDomains {
		if s == d {
			return true
		}
	}
	return false
}

// ZoneTemplate is the ZONE EFLR's attribute template (§4.7).
func ZoneTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "DESCRIPTION", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "DOMAIN", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "MAXIMUM", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "MINIMUM", ReprCode: reprcode.FDOUBL, Count: 1},
	}
}

// ZoneConfig describes one ZONE object. When Domain is "TIME", Maximum and
// Minimum should both be time.Time or both be numeric; any other mix is
// rejected, matching the source schema's check_domain/_set_defaults (§4.7).
// The ZONE set encodes MAXIMUM and MINIMUM with its template's FDOUBL code,
// so time.Time values pass NewZone but fail when the Writer encodes the set.
type ZoneConfig struct {
	Name        string
	Description string
	Domain      string
	Maximum     interface{}
	Minimum     interface{}
}

// NewZone validates Domain and the Maximum/Minimum type pairing, then
// builds the ZONE item in template order.
func NewZone(c ZoneConfig) (*eflr.Item, error) {
	if err := requireName("ZONE", c.Name); err != nil {
		return nil, err
	}
	if c.Domain != "" && !ValidZoneDomain(c.Domain) {
		return nil, fmt.Errorf("schema: zone %q domain must be one of %v, got %q", c.Name, ZoneDomains, c.Domain)
	}

	maxCode, minCode := reprcode.FDOUBL, reprcode.FDOUBL
	if c.Maximum != nil {
		var err error
		if maxCode, err = reprcode.Infer(c.Maximum); err != nil {
			return nil, err
		}
	}
	if c.Minimum != nil {
		var err error
		if minCode, err = reprcode.Infer(c.Minimum); err != nil {
			return nil, err
		}
	}
	maxIsTime, minIsTime := maxCode == reprcode.DTIME, minCode == reprcode.DTIME
	if c.Domain == "TIME" {
		if (maxIsTime || minIsTime) && maxIsTime != minIsTime {
			return nil, fmt.Errorf("schema: zone %q: either both or none of maximum and minimum should be datetime", c.Name)
		}
	} else if maxIsTime || minIsTime {
		return nil, fmt.Errorf("schema: zone %q: domain %q only allows numeric maximum/minimum", c.Name, c.Domain)
	}

	maxValue := eflr.Absent(reprcode.FDOUBL)
	if c.Maximum != nil {
		maxValue = eflr.Scalar(maxCode, c.Maximum)
	}
	minValue := eflr.Absent(reprcode.FDOUBL)
	if c.Minimum != nil {
		minValue = eflr.Scalar(minCode, c.Minimum)
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.ASCII, c.Description),
		scalarOrAbsentString(reprcode.IDENT, c.Domain),
		maxValue,
		minValue,
	}
	return eflr.NewItem(c.Name, values), nil
}
