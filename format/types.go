package format

type (
	MajorType       uint8
	SubType         uint8
	ElementType     uint8
	CompressionType uint8
)

const (
	MajorEmpty  MajorType = 0x1 // MajorEmpty represents a vector with no payload; every position is missing.
	MajorSimple MajorType = 0x2 // MajorSimple represents a single-level encoding (primitive, string or bool).
	MajorDict   MajorType = 0x3 // MajorDict represents a dictionary plus a packed codes vector.
	MajorConst  MajorType = 0x4 // MajorConst represents a single repeated value.

	SubPrimitive SubType = 0x0 // SubPrimitive represents bit-packed primitive values.
	SubString    SubType = 0x1 // SubString represents length-prefixed UTF-8 strings.
	SubBool      SubType = 0x2 // SubBool represents 1-bit packed booleans.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Element types understood by the default column registry. DateTime and
// SQLTimestamp reduce to the 64-bit primitive encoding on the wire.
const (
	ElementBool         ElementType = 0x1
	ElementInt32        ElementType = 0x2
	ElementInt64        ElementType = 0x3
	ElementFloat32      ElementType = 0x4
	ElementFloat64      ElementType = 0x5
	ElementString       ElementType = 0x6
	ElementUTF8View     ElementType = 0x7
	ElementDateTime     ElementType = 0x8
	ElementSQLTimestamp ElementType = 0x9
)

func (m MajorType) String() string {
	switch m {
	case MajorEmpty:
		return "Empty"
	case MajorSimple:
		return "Simple"
	case MajorDict:
		return "Dict"
	case MajorConst:
		return "Const"
	default:
		return "Unknown"
	}
}

func (s SubType) String() string {
	switch s {
	case SubPrimitive:
		return "Primitive"
	case SubString:
		return "String"
	case SubBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

func (e ElementType) String() string {
	switch e {
	case ElementBool:
		return "Bool"
	case ElementInt32:
		return "Int32"
	case ElementInt64:
		return "Int64"
	case ElementFloat32:
		return "Float32"
	case ElementFloat64:
		return "Float64"
	case ElementString:
		return "String"
	case ElementUTF8View:
		return "UTF8View"
	case ElementDateTime:
		return "DateTime"
	case ElementSQLTimestamp:
		return "SQLTimestamp"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionNone:
		return "None"
	default:
		return "Unknown"
	}
}
