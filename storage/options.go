package storage

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
	"github.com/arloliu/sdsl/internal/options"
)

type config struct {
	compression format.CompressionType
	bigEndian   bool
	logger      *zap.Logger
}

// Option configures StoreToFile, LoadFromFile and LoadAny.
type Option = options.Option[*config]

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{
		compression: format.CompressionNone,
		logger:      zap.NewNop(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCompression sets the payload compression used by StoreToFile.
// Loading reads the compression from the file header and ignores this option.
//
// Returns ErrInvalidOption from the store or load call for an unknown type.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *config) error {
		if !compression.IsValid() {
			return errors.Wrapf(errs.ErrInvalidOption, "compression %d", uint8(compression))
		}
		c.compression = compression

		return nil
	})
}

// WithBigEndian stores the header sizes and the payload in big-endian order.
// Files are little-endian by default.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.bigEndian = true
	})
}

// WithLogger sets the logger receiving debug records of each file operation.
// A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}
