package format

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/errs"
)

// ParseCoderType parses a coder name as accepted on the command line.
//
// Accepted names (case-insensitive): gamma, elias-gamma, delta, elias-delta,
// fib, fibonacci, comma2, comma-2.
func ParseCoderType(s string) (CoderType, error) {
	switch strings.ToLower(s) {
	case "gamma", "elias-gamma", "eliasgamma":
		return CoderEliasGamma, nil
	case "delta", "elias-delta", "eliasdelta":
		return CoderEliasDelta, nil
	case "fib", "fibonacci":
		return CoderFibonacci, nil
	case "comma2", "comma-2", "comma":
		return CoderComma2, nil
	default:
		return 0, errors.Wrapf(errs.ErrInvalidOption, "unknown coder %q", s)
	}
}

// ParseVectorKind parses a vector kind name: int, enc, vlc or dac.
func ParseVectorKind(s string) (VectorKind, error) {
	switch strings.ToLower(s) {
	case "int", "intvector", "int-vector":
		return KindIntVector, nil
	case "enc", "encvector", "enc-vector":
		return KindEncVector, nil
	case "vlc", "vlcvector", "vlc-vector":
		return KindVLCVector, nil
	case "dac", "dacvector", "dac-vector":
		return KindDACVector, nil
	default:
		return 0, errors.Wrapf(errs.ErrInvalidOption, "unknown vector kind %q", s)
	}
}

// ParseCompressionType parses a compression name: none, zstd, s2 or lz4.
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, errors.Wrapf(errs.ErrInvalidOption, "unknown compression %q", s)
	}
}
