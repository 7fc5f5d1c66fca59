// Package format defines the closed sets of tags that describe sdsl structures:
// integer width classes, variable-length coders, vector kinds and payload
// compression types.
//
// Every tag is a uint8 that is written verbatim into serialized data, so the
// values below are part of the on-disk format and must never be renumbered.
package format

type (
	WidthClass      uint8
	CoderType       uint8
	VectorKind      uint8
	CompressionType uint8
)

const (
	WidthRuntime WidthClass = 0x0 // WidthRuntime represents a vector whose width is chosen at runtime.
	Width1       WidthClass = 0x1 // Width1 represents a fixed 1-bit vector (bit vector).
	Width8       WidthClass = 0x8 // Width8 represents a fixed 8-bit vector.
	Width16      WidthClass = 0x10
	Width32      WidthClass = 0x20
	Width64      WidthClass = 0x40

	CoderEliasGamma CoderType = 0x1 // CoderEliasGamma represents the Elias-gamma code.
	CoderEliasDelta CoderType = 0x2 // CoderEliasDelta represents the Elias-delta code.
	CoderFibonacci  CoderType = 0x3 // CoderFibonacci represents the Fibonacci (Zeckendorf) code.
	CoderComma2     CoderType = 0x4 // CoderComma2 represents the comma code with 2-bit digits.

	KindIntVector VectorKind = 0x1 // KindIntVector represents a packed integer vector.
	KindEncVector VectorKind = 0x2 // KindEncVector represents a delta-mode sampled code vector.
	KindVLCVector VectorKind = 0x3 // KindVLCVector represents a direct-mode sampled code vector.
	KindDACVector VectorKind = 0x4 // KindDACVector represents a direct access code vector.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Bits returns the fixed width in bits of the class, or 0 for WidthRuntime
// and unknown classes.
func (w WidthClass) Bits() uint8 {
	switch w {
	case Width1, Width8, Width16, Width32, Width64:
		return uint8(w)
	default:
		return 0
	}
}

// IsFixed reports whether the class pins the vector to a single width.
func (w WidthClass) IsFixed() bool {
	return w.Bits() != 0
}

// IsValid reports whether w is one of the known width classes.
func (w WidthClass) IsValid() bool {
	return w == WidthRuntime || w.IsFixed()
}

func (w WidthClass) String() string {
	switch w {
	case WidthRuntime:
		return "Runtime"
	case Width1:
		return "Width1"
	case Width8:
		return "Width8"
	case Width16:
		return "Width16"
	case Width32:
		return "Width32"
	case Width64:
		return "Width64"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the known coders.
func (c CoderType) IsValid() bool {
	switch c {
	case CoderEliasGamma, CoderEliasDelta, CoderFibonacci, CoderComma2:
		return true
	default:
		return false
	}
}

func (c CoderType) String() string {
	switch c {
	case CoderEliasGamma:
		return "EliasGamma"
	case CoderEliasDelta:
		return "EliasDelta"
	case CoderFibonacci:
		return "Fibonacci"
	case CoderComma2:
		return "Comma2"
	default:
		return "Unknown"
	}
}

// IsValid reports whether k is one of the known vector kinds.
func (k VectorKind) IsValid() bool {
	switch k {
	case KindIntVector, KindEncVector, KindVLCVector, KindDACVector:
		return true
	default:
		return false
	}
}

func (k VectorKind) String() string {
	switch k {
	case KindIntVector:
		return "IntVector"
	case KindEncVector:
		return "EncVector"
	case KindVLCVector:
		return "VLCVector"
	case KindDACVector:
		return "DACVector"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the known compression types.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
