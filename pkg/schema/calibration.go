package schema

import (
	"fmt"

	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// CalibrationMeasurementTemplate is the CALIBRATION-MEASUREMENT EFLR's
// attribute template (§4.7). SAMPLE-COUNT is a scalar UVARI, resolving the
// source schema's NumericAttribute(int_only=True) to a single count rather
// than a vector (SPEC_FULL.md §9 Open Question).
func CalibrationMeasurementTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "PHASE", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "MEASUREMENT-SOURCE", ReprCode: reprcode.OBJREF, Count: 1},
		{Label: "TYPE", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "DIMENSION", ReprCode: reprcode.UVARI, Count: 0},
		{Label: "AXIS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "MEASUREMENT", ReprCode: reprcode.FDOUBL, Count: 0},
		{Label: "SAMPLE-COUNT", ReprCode: reprcode.UVARI, Count: 1},
		{Label: "MAXIMUM-DEVIATION", ReprCode: reprcode.FDOUBL, Count: 0},
		{Label: "STANDARD-DEVIATION", ReprCode: reprcode.FDOUBL, Count: 0},
		{Label: "BEGIN-TIME", ReprCode: reprcode.DTIME, Count: 1},
		{Label: "DURATION", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "REFERENCE", ReprCode: reprcode.FDOUBL, Count: 0},
		{Label: "STANDARD", ReprCode: reprcode.FDOUBL, Count: 0},
		{Label: "PLUS-TOLERANCE", ReprCode: reprcode.FDOUBL, Count: 0},
		{Label: "MINUS-TOLERANCE", ReprCode: reprcode.FDOUBL, Count: 0},
	}
}

// CalibrationMeasurementConfig describes one CALIBRATION-MEASUREMENT
// object. The controlled numeric vectors (MaximumDeviation,
// StandardDeviation, Standard, PlusTolerance, MinusTolerance) must all carry
// the same length when set, matching the source schema's count_attributes
// check.
type CalibrationMeasurementConfig struct {
	Name              string
	Phase             string
	MeasurementSource *reprcode.ObjRef
	Type              string
	Dimension         []int
	Axis              []reprcode.ObjRef
	Measurement       []interface{}
	SampleCount       int
	MaximumDeviation  []interface{}
	StandardDeviation []interface{}
	BeginTime         interface{}
	Duration          interface{}
	Reference         []interface{}
	Standard          []interface{}
	PlusTolerance     []interface{}
	MinusTolerance    []interface{}
}

// NewCalibrationMeasurement builds a CALIBRATION-MEASUREMENT item in
// template order.
func NewCalibrationMeasurement(c CalibrationMeasurementConfig) (*eflr.Item, error) {
	if err := requireName("CALIBRATION-MEASUREMENT", c.Name); err != nil {
		return nil, err
	}
	if err := equalLengths(c.MaximumDeviation, c.StandardDeviation, c.Standard, c.PlusTolerance, c.MinusTolerance); err != nil {
		return nil, fmt.Errorf("schema: calibration measurement %q: %w", c.Name, err)
	}

	beginTime := eflr.Absent(reprcode.DTIME)
	if c.BeginTime != nil {
		code, err := reprcode.Infer(c.BeginTime)
		if err != nil {
			return nil, err
		}
		beginTime = eflr.Scalar(code, c.BeginTime)
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.IDENT, c.Phase),
		objRefOrAbsent(reprcode.OBJREF, c.MeasurementSource),
		scalarOrAbsentString(reprcode.IDENT, c.Type),
		vectorOrAbsentInt(reprcode.UVARI, c.Dimension),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Axis),
		numericVectorOrAbsent(c.Measurement),
		intOrAbsent(c.SampleCount != 0, c.SampleCount),
		numericVectorOrAbsent(c.MaximumDeviation),
		numericVectorOrAbsent(c.StandardDeviation),
		beginTime,
		numericOrAbsent(c.Duration),
		numericVectorOrAbsent(c.Reference),
		numericVectorOrAbsent(c.Standard),
		numericVectorOrAbsent(c.PlusTolerance),
		numericVectorOrAbsent(c.MinusTolerance),
	}
	return eflr.NewItem(c.Name, values), nil
}

func equalLengths(vs ...[]interface{}) error {
	n := -1
	for _, v := range vs {
		if len(v) == 0 {
			continue
		}
		if n == -1 {
			n = len(v)
		} else if len(v) != n {
			return fmt.Errorf("controlled numeric attributes must share one length, got %d and %d", n, len(v))
		}
	}
	return nil
}

// CalibrationCoefficientTemplate is the CALIBRATION-COEFFICIENT EFLR's
// attribute template (§4.7).
func CalibrationCoefficientTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "LABEL", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "COEFFICIENTS", ReprCode: reprcode.FDOUBL, Count: 0},
		{Label: "REFERENCES", ReprCode: reprcode.FDOUBL, Count: 0},
		{Label: "PLUS-TOLERANCES", ReprCode: reprcode.FDOUBL, Count: 0},
		{Label: "MINUS-TOLERANCES", ReprCode: reprcode.FDOUBL, Count: 0},
	}
}

// CalibrationCoefficientConfig describes one CALIBRATION-COEFFICIENT
// object. Coefficients, References, PlusTolerances, and MinusTolerances
// must all share one length when set.
type CalibrationCoefficientConfig struct {
	Name            string
	Label           string
	Coefficients    []interface{}
	References      []interface{}
	PlusTolerances  []interface{}
	MinusTolerances []interface{}
}

// NewCalibrationCoefficient builds a CALIBRATION-COEFFICIENT item in
// template order.
func NewCalibrationCoefficient(c CalibrationCoefficientConfig) (*eflr.Item, error) {
	if err := requireName("CALIBRATION-COEFFICIENT", c.Name); err != nil {
		return nil, err
	}
	if err := equalLengths(c.Coefficients, c.References, c.PlusTolerances, c.MinusTolerances); err != nil {
		return nil, fmt.Errorf("schema: calibration coefficient %q: %w", c.Name, err)
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.IDENT, c.Label),
		numericVectorOrAbsent(c.Coefficients),
		numericVectorOrAbsent(c.References),
		numericVectorOrAbsent(c.PlusTolerances),
		numericVectorOrAbsent(c.MinusTolerances),
	}
	return eflr.NewItem(c.Name, values), nil
}

// CalibrationTemplate is the CALIBRATION EFLR's attribute template (§4.7).
func CalibrationTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "CALIBRATED-CHANNELS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "UNCALIBRATED-CHANNELS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "COEFFICIENTS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "MEASUREMENTS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "PARAMETERS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "METHOD", ReprCode: reprcode.IDENT, Count: 1},
	}
}

// CalibrationConfig describes one CALIBRATION object, the top-level type
// tying channels to their coefficients and measurements.
type CalibrationConfig struct {
	Name                 string
	CalibratedChannels   []reprcode.ObjRef
	UncalibratedChannels []reprcode.ObjRef
	Coefficients         []reprcode.ObjRef
	Measurements         []reprcode.ObjRef
	Parameters           []reprcode.ObjRef
	Method               string
}

// NewCalibration builds a CALIBRATION item in template order.
func NewCalibration(c CalibrationConfig) (*eflr.Item, error) {
	if err := requireName("CALIBRATION", c.Name); err != nil {
		return nil, err
	}

	values := []eflr.AttributeValue{
		vectorOrAbsentObjRef(reprcode.OBJREF, c.CalibratedChannels),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.UncalibratedChannels),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Coefficients),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Measurements),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Parameters),
		scalarOrAbsentString(reprcode.IDENT, c.Method),
	}
	return eflr.NewItem(c.Name, values), nil
}
