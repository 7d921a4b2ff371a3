// Package consts holds the fixed wire-format constants of RP66 V1 (DLIS):
// field widths, byte markers, and size bounds that appear throughout the
// Storage Unit Label, Visible Record, and Logical Record Segment layouts.
package consts

const (
	// Storage Unit Label is always exactly this many bytes (§3.6).
	SULSize = 80

	// SUL field widths.
	SULStorageUnitSequenceNumberSize = 4
	SULDLISVersionSize               = 5
	SULStorageUnitStructureSize      = 6
	SULMaximumRecordLengthSize       = 5
	SULStorageSetIdentifierSize      = 60

	// Required SUL field values.
	SULDLISVersion          = "V1.00"
	SULStorageUnitStructure = "RECORD"

	// Visible Record length bounds (§3.5). Length must also be even.
	VisibleRecordMinLength = 20
	VisibleRecordMaxLength = 16384

	// The two-byte format-version marker that follows every Visible Record
	// length field.
	VisibleRecordFFByte   = 0xFF
	VisibleRecordVersByte = 0x01

	// Logical Record Segment Header size: UNORM length (2) + USHORT
	// attributes (1) + USHORT logical-record-type (1).
	LogicalRecordSegmentHeaderSize = 4

	// Minimum size of a Logical Record Segment (header + at least some
	// body) that a fragmentation pass is allowed to produce.
	LogicalRecordSegmentMinSize = 16

	// Logical Record Segment length must be even; a trailing pad byte is
	// added when needed, and that byte also encodes the number of padding
	// bytes added when more than one would be required.
	LogicalRecordSegmentPadByte = 0x01

	// Component descriptor role bit patterns, packed into the top 3 bits
	// of the descriptor byte (§4.2).
	ComponentRoleAttribute = 0b001
	ComponentRoleSet       = 0b111
	ComponentRoleObject    = 0b011

	// Set component descriptor bit masks, within the low 5 bits (§4.4).
	// 0xF8 (role SET, type+name) and 0xF0 (role SET, type only) are the
	// two forms the File-Header and per-type EFLRSets actually emit.
	SetHasTypeMask = 0b00010000
	SetHasNameMask = 0b00001000

	// Object component descriptor bit mask, within the low 5 bits (§4.4).
	ObjectHasNameMask = 0b00010000

	// Attribute component descriptor characteristic bit masks, within the
	// low 5 bits, most-significant-first (§4.2). A byte of 0b00110100
	// (role ATTRIBUTE, LABEL+REPCODE present) is the File-Header template's
	// worked example.
	AttrHasLabelMask    = 0b00010000
	AttrHasCountMask    = 0b00001000
	AttrHasReprCodeMask = 0b00000100
	AttrHasUnitsMask    = 0b00000010
	AttrHasValueMask    = 0b00000001

	// IDENT fields (e.g. set type, attribute label, object name) are
	// USHORT-length-prefixed with a hard 255-byte cap; ASCII fields are
	// UVARI-length-prefixed with no practical cap (§4.1). See
	// pkg/reprcode for the UVARI encoding itself.
	IdentMaxLength = 255
)

// LogicalRecordType is the one-byte USHORT code identifying the kind of
// logical record carried by a segment (§3.3, §4.3).
type LogicalRecordType uint8

// EFLR logical record type codes (§3.3).
const (
	LRTypeFileHeader            LogicalRecordType = 0
	LRTypeOrigin                LogicalRecordType = 1
	LRTypeSecondaryOrigin       LogicalRecordType = 2
	LRTypeChannel               LogicalRecordType = 3
	LRTypeFrame                 LogicalRecordType = 4
	LRTypeStaticData            LogicalRecordType = 5
	LRTypeScript                LogicalRecordType = 6
	LRTypeUpdate                LogicalRecordType = 7
	LRTypeUnformattedData       LogicalRecordType = 8
	LRTypeDictionary            LogicalRecordType = 9
	LRTypeExtendedLRType        LogicalRecordType = 10
	LRTypeOther                 LogicalRecordType = 11
)

// IFLR logical record type codes (§3.3).
const (
	LRTypeFrameData      LogicalRecordType = 0
	LRTypeUnformatted    LogicalRecordType = 1
	LRTypeEncrypted      LogicalRecordType = 2
)

// Set types for the EFLRs defined in §4.7.
const (
	SetTypeFileHeader            = "FILE-HEADER"
	SetTypeOrigin                = "ORIGIN"
	SetTypeWellReferencePoint    = "WELL-REFERENCE"
	SetTypeAxis                  = "AXIS"
	SetTypeChannel               = "CHANNEL"
	SetTypeFrame                 = "FRAME"
	SetTypePath                  = "PATH"
	SetTypeZone                  = "ZONE"
	SetTypeParameter             = "PARAMETER"
	SetTypeEquipment             = "EQUIPMENT"
	SetTypeTool                  = "TOOL"
	SetTypeCalibrationMeasurement = "CALIBRATION-MEASUREMENT"
	SetTypeCalibrationCoefficient = "CALIBRATION-COEFFICIENT"
	SetTypeCalibration           = "CALIBRATION"
	SetTypeComputation           = "COMPUTATION"
	SetTypeProcess               = "PROCESS"
	SetTypeSplice                = "SPLICE"
	SetTypeGroup                 = "GROUP"
	SetTypeLongName              = "LONG-NAME"
	SetTypeMessage               = "MESSAGE"
	SetTypeComment               = "COMMENT"
	SetTypeNoFormat              = "NO-FORMAT"
)

// lrTypeBySetType maps each §4.7 set type to the logical-record-type code
// its EFLR segments carry. FILE-HEADER, ORIGIN, CHANNEL, and FRAME get
// their own dedicated codes; every other metadata set type shares
// STATIC (RP66's catch-all for non-frame, non-channel static metadata),
// except MESSAGE/COMMENT (SCRIPT, RP66's textual-data code) and NO-FORMAT
// (UnformattedData).
var lrTypeBySetType = map[string]LogicalRecordType{
	SetTypeFileHeader: LRTypeFileHeader,
	SetTypeOrigin:     LRTypeOrigin,
	SetTypeChannel:    LRTypeChannel,
	SetTypeFrame:      LRTypeFrame,
	SetTypeMessage:    LRTypeScript,
	SetTypeComment:    LRTypeScript,
	SetTypeNoFormat:   LRTypeUnformattedData,
}

// LRTypeForSetType returns the logical-record-type code for an EFLR set
// type, defaulting to STATIC for the general metadata set types that RP66
// does not give a dedicated code (§3.4, §4.7).
func LRTypeForSetType(setType string) LogicalRecordType {
	if t, ok := lrTypeBySetType[setType]; ok {
		return t
	}
	return LRTypeStaticData
}
