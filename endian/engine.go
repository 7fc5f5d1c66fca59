// Package endian provides byte order utilities for sdsl serialization.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface,
// and adds helpers to move the 64-bit words backing bit-packed structures in and
// out of byte slices.
//
// # Basic Usage
//
// The canonical sdsl format is little-endian:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, bitSize)
//	buf = endian.AppendWords(engine, buf, words)
//
// Big-endian files can be produced for interoperability; the choice is recorded
// in the file header, so readers always select the right engine.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. On a little-endian host the first byte is 0x00.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsLittleEndian reports whether engine writes the least significant byte first.
func IsLittleEndian(engine EndianEngine) bool {
	return engine == binary.LittleEndian
}

// AppendWords appends every word of words to dst using engine and returns the
// extended slice. Exactly 8*len(words) bytes are appended.
//
// Parameters:
//   - engine: Byte order of the appended words
//   - dst: Destination slice (may be nil)
//   - words: Words to append
//
// Returns:
//   - []byte: The extended slice
func AppendWords(engine EndianEngine, dst []byte, words []uint64) []byte {
	for _, w := range words {
		dst = engine.AppendUint64(dst, w)
	}

	return dst
}

// Words decodes n words from the front of src into dst, reusing dst's capacity.
//
// The caller must ensure len(src) >= 8*n.
//
// Parameters:
//   - engine: Byte order of the encoded words
//   - dst: Destination slice, truncated and grown as needed
//   - src: Encoded words
//   - n: Number of words to decode
//
// Returns:
//   - []uint64: The decoded words
func Words(engine EndianEngine, dst []uint64, src []byte, n int) []uint64 {
	if cap(dst) < n {
		dst = make([]uint64, n)
	} else {
		dst = dst[:n]
	}

	for i := range n {
		dst[i] = engine.Uint64(src[i*8:])
	}

	return dst
}
