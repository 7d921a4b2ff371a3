package dlis

import (
	"fmt"
	"math/rand"

	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/consts"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/logging"
	"github.com/bgrewell/dlis-kit/pkg/logicalrecord"
	"github.com/bgrewell/dlis-kit/pkg/options"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
	"github.com/bgrewell/dlis-kit/pkg/schema"
)

// Writer owns everything a single DLIS file write needs: the file-scoped
// EFLRSet registry (the replacement for the source implementation's
// class-level mutable instance dictionaries, §5, §9), the ORIGIN reference
// every item is stamped with, and the ordered IFLR FrameData records
// accumulated by WriteFrameData. One Writer produces exactly one file; call
// Reset to reuse it for another (§5).
type Writer struct {
	opts options.Options

	registry   *eflr.Registry
	fileHeader *schema.FileHeaderConfig

	originRef uint32
	originSet bool
	originSeq uint32

	frames            map[string]*frameState
	frameChannelOrder map[string][]string
	channels          map[string]schema.ChannelConfig
	iflrRecords       []logicalrecord.Record
}

// frameState tracks the per-Frame bookkeeping WriteFrameData needs: the
// Frame's own OBNAME, its channels' wire layout in template order, and the
// next frame number to stamp (monotonic per Frame, §3.4, §4.5).
type frameState struct {
	name       reprcode.OName
	channels   []logicalrecord.ChannelLayout
	nextNumber uint32
}

// NewWriter constructs a Writer with the given options applied over
// options.Default().
func NewWriter(opts ...options.Option) *Writer {
	o := options.Default()
	for _, opt := range opts {
		opt(&o)
	}
	return &Writer{
		opts:              o,
		registry:          eflr.NewRegistry(),
		frames:            map[string]*frameState{},
		frameChannelOrder: map[string][]string{},
		channels:          map[string]schema.ChannelConfig{},
	}
}

// Reset discards every registered EFLRSet, accumulated FrameData, and the
// ORIGIN reference, so the Writer can be reused for an independent write
// with no state carried forward (§5).
func (w *Writer) Reset() {
	w.registry.Reset()
	w.fileHeader = nil
	w.originRef = 0
	w.originSet = false
	w.frames = map[string]*frameState{}
	w.frameChannelOrder = map[string][]string{}
	w.channels = map[string]schema.ChannelConfig{}
	w.iflrRecords = nil
}

// SetFileHeader registers the file's single FILE-HEADER object. Required
// before Write; calling it twice is a ConfigConflict, matching ORIGIN's
// write-once policy (§4.4's "File-Header EFLR is special").
func (w *Writer) SetFileHeader(c schema.FileHeaderConfig) error {
	if w.fileHeader != nil {
		return &ConfigConflict{Item: "FILE-HEADER", Err: fmt.Errorf("file header already set")}
	}
	w.fileHeader = &c
	return nil
}

// SetOrigin registers the file's ORIGIN object and fixes the
// origin_reference every subsequently-added item inherits. Calling it
// twice raises InvariantBroken: RP66 cross-references embed the origin
// reference, so reassigning it would silently invalidate every OBNAME
// already handed out (§4.7 "write-once").
func (w *Writer) SetOrigin(c schema.OriginConfig) (reprcode.OName, error) {
	if w.originSet {
		return reprcode.OName{}, &InvariantBroken{Err: fmt.Errorf("origin file_set_number cannot be reassigned once set")}
	}
	if c.FileSetNumber == 0 {
		// Resolve the random default here, rather than leaving it to
		// NewOrigin, so the Writer's notion of the origin reference matches
		// exactly what ends up encoded into FILE-SET-NUMBER.
		c.FileSetNumber = uint32(1 + rand.Int63n(int64(^uint32(0)-schema.ULongOffset)))
	}
	item, err := schema.NewOrigin(c)
	if err != nil {
		return reprcode.OName{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	set := w.registry.GetOrCreateSet(consts.SetTypeOrigin, "", schema.OriginTemplate())
	if err := set.AddItem(item); err != nil {
		return reprcode.OName{}, &SchemaViolation{Item: c.Name, Err: err}
	}

	w.originRef = c.FileSetNumber
	w.originSet = true
	w.originSeq = c.FileSetNumber
	return reprcode.OName{OriginReference: w.originRef, CopyNumber: item.CopyNumber(), Name: item.Name()}, nil
}

// OriginReference returns the origin_reference every item is stamped with,
// valid only after SetOrigin has been called.
func (w *Writer) OriginReference() uint32 { return w.originRef }

// logger wraps the Writer's configured logr.Logger with pkg/logging's
// domain-specific trace/debug helpers, used by encode.go's assemble/Write
// and by AddFrame's high-compatibility warning.
func (w *Writer) logger() *logging.Logger {
	return logging.NewLogger(w.opts.Logger)
}

// addObject registers item into the named EFLRSet (creating it with
// template on first use) and returns an ObjRef other items can use to
// cross-reference it (§3.3's OBNAME-as-cross-reference).
func (w *Writer) addObject(setType string, template []attribute.Spec, item *eflr.Item) (reprcode.ObjRef, error) {
	if !w.originSet {
		return reprcode.ObjRef{}, &ConfigConflict{Item: item.Name(), Err: fmt.Errorf("%s %q added before SetOrigin", setType, item.Name())}
	}
	set := w.registry.GetOrCreateSet(setType, "", template)
	if err := set.AddItem(item); err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: item.Name(), Err: err}
	}
	return reprcode.ObjRef{
		SetType: setType,
		Name:    reprcode.OName{OriginReference: w.originRef, CopyNumber: item.CopyNumber(), Name: item.Name()},
	}, nil
}

// AddAxis registers one AXIS object.
func (w *Writer) AddAxis(c schema.AxisConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewAxis(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeAxis, schema.AxisTemplate(), item)
}

// AddWellReferencePoint registers one WELL-REFERENCE object.
func (w *Writer) AddWellReferencePoint(c schema.WellReferencePointConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewWellReferencePoint(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeWellReferencePoint, schema.WellReferencePointTemplate(), item)
}

// AddChannel registers one CHANNEL object.
func (w *Writer) AddChannel(c schema.ChannelConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewChannel(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	ref, err := w.addObject(consts.SetTypeChannel, schema.ChannelTemplate(), item)
	if err != nil {
		return reprcode.ObjRef{}, err
	}
	w.recordChannelLayout(c.Name, c)
	return ref, nil
}

// AddZone registers one ZONE object.
func (w *Writer) AddZone(c schema.ZoneConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewZone(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeZone, schema.ZoneTemplate(), item)
}

// AddParameter registers one PARAMETER object.
func (w *Writer) AddParameter(c schema.ParameterConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewParameter(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeParameter, schema.ParameterTemplate(), item)
}

// AddEquipment registers one EQUIPMENT object.
func (w *Writer) AddEquipment(c schema.EquipmentConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewEquipment(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeEquipment, schema.EquipmentTemplate(), item)
}

// AddTool registers one TOOL object.
func (w *Writer) AddTool(c schema.ToolConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewTool(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeTool, schema.ToolTemplate(), item)
}

// AddComputation registers one COMPUTATION object.
func (w *Writer) AddComputation(c schema.ComputationConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewComputation(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeComputation, schema.ComputationTemplate(), item)
}

// AddProcess registers one PROCESS object.
func (w *Writer) AddProcess(c schema.ProcessConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewProcess(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeProcess, schema.ProcessTemplate(), item)
}

// AddSplice registers one SPLICE object.
func (w *Writer) AddSplice(c schema.SpliceConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewSplice(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeSplice, schema.SpliceTemplate(), item)
}

// AddCalibrationMeasurement registers one CALIBRATION-MEASUREMENT object.
func (w *Writer) AddCalibrationMeasurement(c schema.CalibrationMeasurementConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewCalibrationMeasurement(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeCalibrationMeasurement, schema.CalibrationMeasurementTemplate(), item)
}

// AddCalibrationCoefficient registers one CALIBRATION-COEFFICIENT object.
func (w *Writer) AddCalibrationCoefficient(c schema.CalibrationCoefficientConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewCalibrationCoefficient(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeCalibrationCoefficient, schema.CalibrationCoefficientTemplate(), item)
}

// AddCalibration registers one CALIBRATION object.
func (w *Writer) AddCalibration(c schema.CalibrationConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewCalibration(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeCalibration, schema.CalibrationTemplate(), item)
}

// AddGroup registers one GROUP object.
func (w *Writer) AddGroup(c schema.GroupConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewGroup(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeGroup, schema.GroupTemplate(), item)
}

// AddLongName registers one LONG-NAME object.
func (w *Writer) AddLongName(c schema.LongNameConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewLongName(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeLongName, schema.LongNameTemplate(), item)
}

// AddMessage registers one MESSAGE object.
func (w *Writer) AddMessage(c schema.MessageConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewMessage(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeMessage, schema.MessageTemplate(), item)
}

// AddComment registers one COMMENT object.
func (w *Writer) AddComment(c schema.CommentConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewComment(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeComment, schema.CommentTemplate(), item)
}

// AddNoFormat registers one NO-FORMAT object describing a companion
// unformatted-data IFLR.
func (w *Writer) AddNoFormat(c schema.NoFormatConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewNoFormat(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypeNoFormat, schema.NoFormatTemplate(), item)
}

// AddPath registers one PATH object.
func (w *Writer) AddPath(c schema.PathConfig) (reprcode.ObjRef, error) {
	item, err := schema.NewPath(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	return w.addObject(consts.SetTypePath, schema.PathTemplate(), item)
}
