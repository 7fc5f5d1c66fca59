// Package section defines the fixed-size header of sdsl structure files.
//
// A structure file is a 32-byte Header followed by the payload: the binary
// encoding of one structure (IntVector, EncVector, VLCVector or DACVector),
// optionally compressed.
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - Options (2 bytes): magic number, endianness          │
//	│  - Kind, Variant, Compression (3 bytes)                 │
//	│  - Reserved (3 bytes)                                   │
//	│  - RawSize, StoredSize, Checksum (24 bytes)             │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (StoredSize bytes)                              │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field       | Type   | Description
//	-------|-------------|--------|------------------------------------------
//	0-1    | Options     | uint16 | Magic (bits 4-15), endianness (bit 1)
//	2      | Kind        | uint8  | format.VectorKind
//	3      | Variant     | uint8  | Width class, coder type or chunk width
//	4      | Compression | uint8  | format.CompressionType
//	5-7    | Reserved    | -      | Must be zero
//	8-15   | RawSize     | uint64 | Payload size before compression
//	16-23  | StoredSize  | uint64 | Payload size in the file
//	24-31  | Checksum    | uint64 | xxhash64 of the uncompressed payload
//
// The Options field is always little-endian. Every other multi-byte field, in
// the header and in the payload, uses the byte order selected by the
// endianness bit.
package section
