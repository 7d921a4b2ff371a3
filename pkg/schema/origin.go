package schema

import (
	"math/rand"
	"time"

	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// ULongOffset bounds the random FILE-SET-NUMBER generated when a config
// leaves it unset: subtracted from the ULONG ceiling (2^32-1) it leaves
// 2^30-1, the largest value the UVARI-coded FILE-SET-NUMBER can hold,
// matching the source schema's headroom.
const ULongOffset = 3221225472

// OriginTemplate is the ORIGIN EFLR's attribute template (§4.7).
func OriginTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "FILE-ID", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "FILE-SET-NAME", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "FILE-SET-NUMBER", ReprCode: reprcode.UVARI, Count: 1},
		{Label: "FILE-NUMBER", ReprCode: reprcode.UVARI, Count: 1},
		{Label: "FILE-TYPE", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "PRODUCT", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "VERSION", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "PROGRAMS", ReprCode: reprcode.ASCII, Count: 0},
		{Label: "CREATION-TIME", ReprCode: reprcode.DTIME, Count: 1},
		{Label: "ORDER-NUMBER", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "DESCENT-NUMBER", ReprCode: reprcode.ASCII, Count: 0},
		{Label: "RUN-NUMBER", ReprCode: reprcode.ASCII, Count: 0},
		{Label: "WELL-ID", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "WELL-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "FIELD-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "PRODUCER-CODE", ReprCode: reprcode.UVARI, Count: 1},
		{Label: "PRODUCER-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "COMPANY", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "NAME-SPACE-NAME", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "NAME-SPACE-VERSION", ReprCode: reprcode.UVARI, Count: 1},
	}
}

// OriginConfig describes one ORIGIN object. FileSetNumber is generated
// randomly when zero, matching the source schema's fallback; pkg/dlis.Writer
// rejects a second SetOrigin call, so a given Writer never reassigns it
// until Reset, since RP66 treats it as an immutable file identity (§9, §12).
type OriginConfig struct {
	Name              string
	FileID            string
	FileSetName       string
	FileSetNumber     uint32
	FileNumber        uint32
	FileType          string
	Product           string
	Version           string
	Programs          []string
	CreationTime      time.Time
	OrderNumber       string
	DescentNumber     []string
	RunNumber         []string
	WellID            string
	WellName          string
	FieldName         string
	ProducerCode      uint32
	ProducerName      string
	Company           string
	NameSpaceName     string
	NameSpaceVersion  uint32
}

// NewOrigin defaults FieldName to "WILDCAT", CreationTime to now, and
// FileSetNumber to a random value in [1, 2^32-1-ULongOffset] when unset,
// then builds the ORIGIN item in template order.
func NewOrigin(c OriginConfig) (*eflr.Item, error) {
	if err := requireName("ORIGIN", c.Name); err != nil {
		return nil, err
	}
	if c.FieldName == "" {
		c.FieldName = "WILDCAT"
	}
	if c.CreationTime.IsZero() {
		c.CreationTime = time.Now()
	}
	if c.FileSetNumber == 0 {
		c.FileSetNumber = uint32(1 + rand.Int63n(int64(^uint32(0)-ULongOffset)))
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.ASCII, c.FileID),
		scalarOrAbsentString(reprcode.IDENT, c.FileSetName),
		eflr.Scalar(reprcode.UVARI, c.FileSetNumber),
		eflr.Scalar(reprcode.UVARI, c.FileNumber),
		scalarOrAbsentString(reprcode.IDENT, c.FileType),
		scalarOrAbsentString(reprcode.ASCII, c.Product),
		scalarOrAbsentString(reprcode.ASCII, c.Version),
		vectorOrAbsentString(reprcode.ASCII, c.Programs),
		eflr.Scalar(reprcode.DTIME, c.CreationTime),
		scalarOrAbsentString(reprcode.ASCII, c.OrderNumber),
		vectorOrAbsentString(reprcode.ASCII, c.DescentNumber),
		vectorOrAbsentString(reprcode.ASCII, c.RunNumber),
		scalarOrAbsentString(reprcode.ASCII, c.WellID),
		scalarOrAbsentString(reprcode.ASCII, c.WellName),
		scalarOrAbsentString(reprcode.ASCII, c.FieldName),
		eflr.Scalar(reprcode.UVARI, c.ProducerCode),
		scalarOrAbsentString(reprcode.ASCII, c.ProducerName),
		scalarOrAbsentString(reprcode.ASCII, c.Company),
		scalarOrAbsentString(reprcode.IDENT, c.NameSpaceName),
		eflr.Scalar(reprcode.UVARI, c.NameSpaceVersion),
	}
	return eflr.NewItem(c.Name, values), nil
}
