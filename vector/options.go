package vector

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
	"github.com/arloliu/sdsl/internal/options"
)

const (
	// DefaultCoder is the coder used by EncVector and VLCVector.
	DefaultCoder = format.CoderEliasDelta
	// DefaultSampleDensity is the default distance between samples.
	DefaultSampleDensity uint64 = 128
	// DefaultChunkWidth is the default DACVector chunk width in bits.
	DefaultChunkWidth uint8 = 8
)

// buildConfig holds construction parameters. Options a vector kind does not
// use are ignored.
type buildConfig struct {
	coder      format.CoderType
	density    uint64
	chunkWidth uint8
}

// Option configures vector construction.
type Option = options.Option[*buildConfig]

func newBuildConfig(opts []Option) (*buildConfig, error) {
	cfg := &buildConfig{
		coder:      DefaultCoder,
		density:    DefaultSampleDensity,
		chunkWidth: DefaultChunkWidth,
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCoder selects the variable-length code of EncVector and VLCVector.
func WithCoder(t format.CoderType) Option {
	return options.New(func(cfg *buildConfig) error {
		if !t.IsValid() {
			return errors.Wrapf(errs.ErrInvalidOption, "unknown coder type %d", uint8(t))
		}
		cfg.coder = t

		return nil
	})
}

// WithSampleDensity sets D, the distance between samples of EncVector and
// VLCVector. Random access decodes at most D codes.
func WithSampleDensity(d uint64) Option {
	return options.New(func(cfg *buildConfig) error {
		if d == 0 {
			return errors.Wrap(errs.ErrInvalidOption, "sample density must be at least 1")
		}
		cfg.density = d

		return nil
	})
}

// WithChunkWidth sets the DACVector chunk width in bits, 1 to 64.
func WithChunkWidth(w uint8) Option {
	return options.New(func(cfg *buildConfig) error {
		if w == 0 || w > 64 {
			return errors.Wrapf(errs.ErrInvalidOption, "chunk width %d is outside [1, 64]", w)
		}
		cfg.chunkWidth = w

		return nil
	})
}
