// Package intvector provides IntVector, a bit-packed array of unsigned integers
// whose elements all share one width between 1 and 64 bits.
//
// IntVector is the storage primitive of sdsl: every compressed vector is built
// from an IntVector (or any other Sequence) and stores its own internals in
// IntVectors.
//
// # Width classes
//
// A vector belongs to one closed width class (format.WidthClass):
//   - WidthRuntime: the width is chosen at construction and may be changed later
//   - Width1, Width8, Width16, Width32, Width64: the width is pinned
//
// # Reinterpretation
//
// The element count is derived from the bit size: Size() == BitSize()/Width().
// SetWidth never rewrites stored bits, it only regroups them. A vector holding
// the single 8-bit value 0b1011_0000 reads as [0b0000, 0b1011] after SetWidth(4).
// Use BitCompress to convert content to a narrower width instead.
//
// # Thread Safety
//
// Concurrent reads are safe. Mutation (Set, SetInt, SetWidth, Resize, bitwise
// assignment, Flip) requires external synchronization, and iterators returned by
// All must not be used while the vector is being mutated.
package intvector

import (
	"iter"
	"math/bits"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/bitstore"
	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
)

// AutoWidth is the width sentinel that starts a two-phase build: the vector is
// allocated at 64 bits per element, filled by the caller, and then narrowed to
// the minimal width by BitCompress.
const AutoWidth uint8 = 0xFF

// maxSize is the element limit of an IntVector.
const maxSize = uint64(1) << 58

// IntVector is a packed array of unsigned integers of a common width.
//
// Create vectors with New, NewFixed, NewBitVector, FromSequence or FromValues.
// The zero value is only valid as a target for UnmarshalBinary/DecodeBinary,
// which produce a runtime-width vector.
type IntVector struct {
	bits    *bitstore.BitStore
	width   uint8
	class   format.WidthClass
	pending bool // allocated with AutoWidth and not yet compressed
}

// New creates a runtime-width vector of length elements, each set to
// defaultValue masked to width bits.
//
// Parameters:
//   - length: Number of elements
//   - defaultValue: Initial value of every element (high bits are truncated)
//   - width: Element width in [1, 64], or AutoWidth
//
// Returns:
//   - *IntVector: The created vector
//   - error: ErrWidthViolation for width 0 or above 64, ErrInvalidOption when
//     the vector would not fit in 64-bit bit addressing
func New(length uint64, defaultValue uint64, width uint8) (*IntVector, error) {
	pending := false
	if width == AutoWidth {
		width = 64
		pending = true
	}

	if width == 0 || width > 64 {
		return nil, errors.Wrapf(errs.ErrWidthViolation, "width %d is outside [1, 64]", width)
	}

	v, err := newVector(format.WidthRuntime, length, defaultValue, width)
	if err != nil {
		return nil, err
	}
	v.pending = pending

	return v, nil
}

// NewFixed creates a vector of a fixed width class.
//
// Returns ErrWidthViolation when class is WidthRuntime or unknown.
func NewFixed(class format.WidthClass, length uint64, defaultValue uint64) (*IntVector, error) {
	if !class.IsFixed() {
		return nil, errors.Wrapf(errs.ErrWidthViolation, "width class %s is not fixed", class)
	}

	return newVector(class, length, defaultValue, class.Bits())
}

// NewBitVector creates a fixed 1-bit vector of length bits, all set to the low
// bit of defaultValue.
func NewBitVector(length uint64, defaultValue uint64) *IntVector {
	v, err := newVector(format.Width1, length, defaultValue, 1)
	if err != nil {
		panic(errors.AssertionFailedf("bit vector of %d bits: %v", length, err))
	}

	return v
}

func newVector(class format.WidthClass, length, defaultValue uint64, width uint8) (*IntVector, error) {
	hi, bitSize := bits.Mul64(length, uint64(width))
	if hi != 0 || length > maxSize {
		return nil, errors.Wrapf(errs.ErrInvalidOption, "%d elements of %d bits exceed the maximum size", length, width)
	}

	v := &IntVector{
		bits:  bitstore.New(bitSize),
		width: width,
		class: class,
	}

	if defaultValue&bitstore.Mask(width) != 0 {
		for i := range length {
			v.bits.SetBits(i*uint64(width), width, defaultValue)
		}
	}

	return v, nil
}

// Width returns the number of bits per element.
func (v *IntVector) Width() uint8 {
	return v.width
}

// WidthClass returns the width class of the vector.
func (v *IntVector) WidthClass() format.WidthClass {
	return v.class
}

// SetWidth reinterprets the stored bits as elements of width w.
//
// Precondition: the vector is runtime-width (or w equals its fixed width) and
// 1 <= w <= 64. Postcondition: BitSize() and every stored bit are unchanged and
// Size() == BitSize()/w. Values are not converted.
//
// Returns ErrWidthViolation when the precondition does not hold.
func (v *IntVector) SetWidth(w uint8) error {
	if v.class.IsFixed() {
		if w != v.class.Bits() {
			return errors.Wrapf(errs.ErrWidthViolation, "cannot change width of %s vector to %d", v.class, w)
		}

		return nil
	}

	if w == 0 || w > 64 {
		return errors.Wrapf(errs.ErrWidthViolation, "width %d is outside [1, 64]", w)
	}

	v.width = w
	v.pending = false

	return nil
}

// Pending reports whether the vector was created with AutoWidth and BitCompress
// has not been called yet.
func (v *IntVector) Pending() bool {
	return v.pending
}

// BitCompress rewrites the content at the minimal width able to hold the largest
// element (at least 1 bit) and shrinks the bit size accordingly.
//
// This is the second phase of an AutoWidth build, and is valid on any
// runtime-width vector. Returns ErrWidthViolation on fixed-width vectors.
func (v *IntVector) BitCompress() error {
	if v.class.IsFixed() {
		return errors.Wrapf(errs.ErrWidthViolation, "cannot compress %s vector", v.class)
	}

	n := v.Size()
	var maxVal uint64
	for i := range n {
		maxVal = max(maxVal, v.At(i))
	}

	newWidth := uint8(max(1, bits.Len64(maxVal)))
	if newWidth < v.width {
		// Element i moves to a lower offset only, so unread elements are never overwritten.
		for i := range n {
			val := v.bits.GetBits(i*uint64(v.width), v.width)
			v.bits.SetBits(i*uint64(newWidth), newWidth, val)
		}
		v.bits.Resize(n * uint64(newWidth))
		v.width = newWidth
	}
	v.pending = false

	return nil
}

// Size returns the number of elements, BitSize()/Width().
func (v *IntVector) Size() uint64 {
	return v.bits.Size() / uint64(v.width)
}

// BitSize returns the number of bits in use.
func (v *IntVector) BitSize() uint64 {
	return v.bits.Size()
}

// Capacity returns the number of allocated bits.
func (v *IntVector) Capacity() uint64 {
	return v.bits.Capacity()
}

// MaxSize returns the largest supported number of elements.
func (v *IntVector) MaxSize() uint64 {
	return maxSize
}

// Empty reports whether the vector has no elements.
func (v *IntVector) Empty() bool {
	return v.Size() == 0
}

// Get returns the element at index i.
//
// Returns ErrIndexOutOfRange when i >= Size().
func (v *IntVector) Get(i uint64) (uint64, error) {
	if i >= v.Size() {
		return 0, errors.Wrapf(errs.ErrIndexOutOfRange, "index %d, size %d", i, v.Size())
	}

	return v.At(i), nil
}

// At returns the element at index i without bounds checking. Indexes at or
// beyond Size() are a contract violation; use Get for checked access.
func (v *IntVector) At(i uint64) uint64 {
	return v.bits.GetBits(i*uint64(v.width), v.width)
}

// Set stores val at index i. Bits of val above Width() are silently truncated.
//
// Returns ErrIndexOutOfRange when i >= Size().
func (v *IntVector) Set(i uint64, val uint64) error {
	if i >= v.Size() {
		return errors.Wrapf(errs.ErrIndexOutOfRange, "index %d, size %d", i, v.Size())
	}

	v.bits.SetBits(i*uint64(v.width), v.width, val)

	return nil
}

// GetInt returns the n-bit field starting at bit bitIdx, independent of Width().
// Bit bitIdx is the least significant bit of the result. Callers reading a full
// word pass n = 64.
//
// Returns ErrWidthViolation when n is outside [1, 64] and ErrIndexOutOfRange when
// the field extends past BitSize().
func (v *IntVector) GetInt(bitIdx uint64, n uint8) (uint64, error) {
	if err := v.checkField(bitIdx, n); err != nil {
		return 0, err
	}

	return v.bits.GetBits(bitIdx, n), nil
}

// SetInt writes the low n bits of val starting at bit bitIdx, independent of
// Width(). Bit bitIdx receives the least significant bit of val.
//
// Returns ErrWidthViolation when n is outside [1, 64] and ErrIndexOutOfRange when
// the field extends past BitSize().
func (v *IntVector) SetInt(bitIdx uint64, val uint64, n uint8) error {
	if err := v.checkField(bitIdx, n); err != nil {
		return err
	}

	v.bits.SetBits(bitIdx, n, val)

	return nil
}

func (v *IntVector) checkField(bitIdx uint64, n uint8) error {
	if n == 0 || n > 64 {
		return errors.Wrapf(errs.ErrWidthViolation, "field length %d is outside [1, 64]", n)
	}

	if bitIdx > v.BitSize() || uint64(n) > v.BitSize()-bitIdx {
		return errors.Wrapf(errs.ErrIndexOutOfRange, "bits [%d, %d) exceed bit size %d", bitIdx, bitIdx+uint64(n), v.BitSize())
	}

	return nil
}

// Resize changes the number of elements to n. Growth is zero-filled,
// truncation discards elements.
//
// Returns ErrInvalidOption, leaving v unchanged, when n exceeds MaxSize() or
// n elements do not fit in 64-bit bit addressing.
func (v *IntVector) Resize(n uint64) error {
	hi, bitSize := bits.Mul64(n, uint64(v.width))
	if hi != 0 || n > maxSize {
		return errors.Wrapf(errs.ErrInvalidOption, "resize to %d elements of %d bits exceeds the maximum size", n, v.width)
	}

	v.bits.Resize(bitSize)

	return nil
}

// BitResize changes the bit size to n. Growth is zero-filled, truncation
// discards bits. A bit size that is not a multiple of Width() leaves trailing
// bits that are not addressable by element index.
//
// Returns ErrInvalidOption, leaving v unchanged, when n bits hold more than
// MaxSize() elements.
func (v *IntVector) BitResize(n uint64) error {
	if n/uint64(v.width) > maxSize {
		return errors.Wrapf(errs.ErrInvalidOption, "resize to %d bits of width %d exceeds the maximum size", n, v.width)
	}

	v.bits.Resize(n)

	return nil
}

// Flip negates every bit in [0, BitSize()).
func (v *IntVector) Flip() {
	v.bits.Flip()
}

// Swap exchanges the content, width and class of v and other.
func (v *IntVector) Swap(other *IntVector) {
	*v, *other = *other, *v
}

// Clone returns a deep copy of v.
func (v *IntVector) Clone() *IntVector {
	c := *v
	c.bits = v.bits.Clone()

	return &c
}

// BitStore returns the store backing v.
//
// The store is owned by the vector; it is exposed for coders and compressed
// vectors that address the raw bit stream. Resizing it changes the vector.
func (v *IntVector) BitStore() *bitstore.BitStore {
	return v.bits
}

// All returns an iterator over the elements in index order.
//
// Each call starts a fresh pass at index 0. The iterator reads the live vector
// and must not outlive it or run concurrently with mutation.
func (v *IntVector) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		n := v.Size()
		for i := range n {
			if !yield(v.At(i)) {
				return
			}
		}
	}
}

// Values returns a copy of the elements as a slice.
func (v *IntVector) Values() []uint64 {
	out := make([]uint64, 0, v.Size())
	for val := range v.All() {
		out = append(out, val)
	}

	return out
}

// String returns the elements separated by single spaces.
func (v *IntVector) String() string {
	var sb strings.Builder
	first := true
	for val := range v.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(strconv.FormatUint(val, 10))
	}

	return sb.String()
}

// Kind returns format.KindIntVector.
func (v *IntVector) Kind() format.VectorKind {
	return format.KindIntVector
}

// Variant returns the width class tag recorded in file headers.
func (v *IntVector) Variant() uint8 {
	return uint8(v.class)
}
