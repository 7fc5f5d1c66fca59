package section

const (
	// Bit masks of the Options field
	ReservedLowMask  = 0x0001 // Reserved bit 0, must be 0
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1), 0=little, 1=big
	ReservedBitsMask = 0x000C // Reserved bits 2-3, must be 0
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicV1Opt is the version 1 magic number of sdsl structure files.
	MagicV1Opt = 0x5D50
)

// Header layout
const (
	HeaderSize = 32 // fixed header size in bytes

	OptionsOffset     = 0  // [0:2] options, always little-endian
	KindOffset        = 2  // [2] structure kind
	VariantOffset     = 3  // [3] width class, coder type or chunk width
	CompressionOffset = 4  // [4] payload compression
	ReservedOffset    = 5  // [5:8] reserved, must be 0
	RawSizeOffset     = 8  // [8:16] uncompressed payload size
	StoredSizeOffset  = 16 // [16:24] payload size on disk
	ChecksumOffset    = 24 // [24:32] xxhash64 of the uncompressed payload
)
