package intvector

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/errs"
)

// Compare orders v and other lexicographically by element value, a shorter
// vector ordering first when it is a prefix of the other. Widths may differ.
//
// Returns -1, 0 or +1.
func (v *IntVector) Compare(other *IntVector) int {
	n := min(v.Size(), other.Size())
	for i := range n {
		a, b := v.At(i), other.At(i)
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
	}

	switch {
	case v.Size() < other.Size():
		return -1
	case v.Size() > other.Size():
		return 1
	default:
		return 0
	}
}

// Less reports whether v orders before other.
func (v *IntVector) Less(other *IntVector) bool {
	return v.Compare(other) < 0
}

// Greater reports whether v orders after other.
func (v *IntVector) Greater(other *IntVector) bool {
	return v.Compare(other) > 0
}

// LessEqual reports whether v does not order after other.
func (v *IntVector) LessEqual(other *IntVector) bool {
	return v.Compare(other) <= 0
}

// GreaterEqual reports whether v does not order before other.
func (v *IntVector) GreaterEqual(other *IntVector) bool {
	return v.Compare(other) >= 0
}

// Equal reports whether v and other have the same width, bit size and bits.
func (v *IntVector) Equal(other *IntVector) bool {
	return v.width == other.width && v.bits.Equal(other.bits)
}

// AndAssign stores the bitwise AND of v and other into v.
//
// Returns ErrSizeMismatch when the bit sizes differ and ErrWidthViolation when
// the widths differ; v is unchanged on error.
func (v *IntVector) AndAssign(other *IntVector) error {
	if err := v.checkOperand(other); err != nil {
		return err
	}
	v.bits.And(other.bits)

	return nil
}

// OrAssign stores the bitwise OR of v and other into v.
//
// Returns ErrSizeMismatch when the bit sizes differ and ErrWidthViolation when
// the widths differ; v is unchanged on error.
func (v *IntVector) OrAssign(other *IntVector) error {
	if err := v.checkOperand(other); err != nil {
		return err
	}
	v.bits.Or(other.bits)

	return nil
}

// XorAssign stores the bitwise XOR of v and other into v.
//
// Returns ErrSizeMismatch when the bit sizes differ and ErrWidthViolation when
// the widths differ; v is unchanged on error.
func (v *IntVector) XorAssign(other *IntVector) error {
	if err := v.checkOperand(other); err != nil {
		return err
	}
	v.bits.Xor(other.bits)

	return nil
}

func (v *IntVector) checkOperand(other *IntVector) error {
	if v.BitSize() != other.BitSize() {
		return errors.Wrapf(errs.ErrSizeMismatch, "%d bits vs %d bits", v.BitSize(), other.BitSize())
	}

	if v.width != other.width {
		return errors.Wrapf(errs.ErrWidthViolation, "width %d vs width %d", v.width, other.width)
	}

	return nil
}
