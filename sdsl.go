// Package sdsl provides succinct integer vectors: compact, random-access
// representations of unsigned integer sequences.
//
// The structures live in sub-packages; this package wraps the most common
// constructions:
//
//   - intvector.IntVector: bit-packed array with a common element width
//   - vector.EncVector: non-decreasing sequences as coded differences
//   - vector.VLCVector: arbitrary sequences as variable-length codes
//   - vector.DACVector: directly addressable codes, fast random access
//   - storage: single-structure files with optional compression
//
// # Basic Usage
//
// Packing values at the minimal width:
//
//	iv, _ := sdsl.Pack([]uint64{3, 1, 4, 1, 5, 9, 2, 6})
//	fmt.Println(iv.Width()) // 4
//
// Compressing a sorted sequence and reading it back:
//
//	offsets := []uint32{0, 17, 20, 95, 1024}
//	enc, _ := sdsl.NewEncVector(offsets, vector.WithSampleDensity(64))
//	v, _ := enc.Get(3) // 95
//
// Storing and loading:
//
//	_ = sdsl.Store("offsets.sdsl", enc, storage.WithCompression(format.CompressionZstd))
//	loaded, _ := sdsl.Load("offsets.sdsl")
//
// For custom layouts (fixed width classes, width reinterpretation, raw bit
// access) use the intvector package directly.
package sdsl

import (
	"github.com/arloliu/sdsl/intvector"
	"github.com/arloliu/sdsl/storage"
	"github.com/arloliu/sdsl/vector"
)

// Unsigned is the set of element types accepted by the slice constructors.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Vector is the read interface shared by every structure.
type Vector = vector.Vector

// Pack creates an IntVector holding values at the minimal width able to
// represent the largest value.
func Pack[T Unsigned](values []T) (*intvector.IntVector, error) {
	return intvector.FromSequence(intvector.Slice[T](values), intvector.AutoWidth)
}

// NewEncVector builds an EncVector from a non-decreasing slice.
//
// Parameters:
//   - values: Non-decreasing input values
//   - opts: vector.WithCoder, vector.WithSampleDensity
//
// Returns:
//   - *vector.EncVector: The built vector
//   - error: ErrMonotonicityViolation for a decreasing pair, ErrValueOutOfRange
//     or ErrInvalidOption
func NewEncVector[T Unsigned](values []T, opts ...vector.Option) (*vector.EncVector, error) {
	return vector.NewEncVector(intvector.Slice[T](values), opts...)
}

// NewVLCVector builds a VLCVector from values in any order.
func NewVLCVector[T Unsigned](values []T, opts ...vector.Option) (*vector.VLCVector, error) {
	return vector.NewVLCVector(intvector.Slice[T](values), opts...)
}

// NewDACVector builds a DACVector from values in any order.
func NewDACVector[T Unsigned](values []T, opts ...vector.Option) (*vector.DACVector, error) {
	return vector.NewDACVector(intvector.Slice[T](values), opts...)
}

// Store writes v to path. See storage.StoreToFile.
func Store(path string, v storage.Storable, opts ...storage.Option) error {
	return storage.StoreToFile(path, v, opts...)
}

// Load reads the structure stored at path, whatever its kind. See storage.LoadAny.
func Load(path string, opts ...storage.Option) (Vector, error) {
	return storage.LoadAny(path, opts...)
}
