package section

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/endian"
	"github.com/arloliu/sdsl/errs"
)

// Flag is the packed options field at the start of the header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is reserved, must be set to 0.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number identifying the file format:
	//   - 0x5D50 (0b0101_1101_0101_0000): sdsl structure file v1
	Options uint16
}

// NewFlag creates a little-endian v1 flag.
func NewFlag() Flag {
	flag := Flag{Options: MagicV1Opt}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the data is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the data is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicV1Opt
}

// GetEndianEngine returns the engine for the byte order selected by the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// Validate checks the magic number and reserved bits.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errors.Wrapf(errs.ErrCorruptFormat, "bad magic number 0x%04X", f.GetMagicNumber())
	}

	if f.Options&(ReservedLowMask|ReservedBitsMask) != 0 {
		return errors.Wrapf(errs.ErrCorruptFormat, "reserved option bits set: 0x%04X", f.Options)
	}

	return nil
}
