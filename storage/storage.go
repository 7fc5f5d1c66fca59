// Package storage persists sdsl structures in single-structure files.
//
// A file is a 32-byte section.Header followed by the structure's binary
// serialization, optionally compressed as a whole:
//
//	[header:32][payload:StoredSize]
//
// The header records the structure kind and variant, the compression, both
// payload sizes and the xxhash64 of the uncompressed payload, which is verified
// on every load.
//
// StoreToFile is atomic: the file is written to a temporary sibling, synced and
// renamed over the destination, so readers observe either the old or the new
// content. Every file system failure matches errs.ErrIO.
package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/arloliu/sdsl/compress"
	"github.com/arloliu/sdsl/endian"
	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
	"github.com/arloliu/sdsl/internal/hash"
	"github.com/arloliu/sdsl/internal/pool"
	"github.com/arloliu/sdsl/intvector"
	"github.com/arloliu/sdsl/section"
	"github.com/arloliu/sdsl/vector"
)

// Storable is a structure that can be written to and read from a file.
// Every vector.Vector implementation, *intvector.IntVector included, is Storable.
type Storable interface {
	Kind() format.VectorKind
	Variant() uint8
	AppendBinary(dst []byte, engine endian.EndianEngine) []byte
	DecodeBinary(data []byte, engine endian.EndianEngine) (int, error)
}

var _ Storable = vector.Vector(nil)

// StoreToFile writes v to path, replacing any existing file.
//
// Parameters:
//   - path: Destination file path; its directory must exist
//   - v: Structure to store
//   - opts: WithCompression, WithBigEndian, WithLogger
//
// Returns:
//   - error: ErrInvalidOption for a nil structure or bad option, an IOError
//     (matching ErrIO) when the file cannot be written
func StoreToFile(path string, v Storable, opts ...Option) error {
	if v == nil {
		return errors.Wrap(errs.ErrInvalidOption, "nil structure")
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return err
	}

	header := section.NewHeader(v.Kind(), v.Variant(), cfg.compression)
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.B = v.AppendBinary(buf.B, header.Flag.GetEndianEngine())
	raw := buf.Bytes()

	stored, err := codec.Compress(raw)
	if err != nil {
		return errors.Wrapf(err, "compress %s payload", v.Kind())
	}

	header.RawSize = uint64(len(raw))
	header.StoredSize = uint64(len(stored))
	header.Checksum = hash.Checksum(raw)

	if err := writeAtomic(path, header.Bytes(), stored); err != nil {
		return err
	}

	stats := compress.CompressionStats{
		Algorithm:      cfg.compression,
		OriginalSize:   int64(len(raw)),
		CompressedSize: int64(len(stored)),
	}
	cfg.logger.Debug("stored structure",
		zap.String("path", path),
		zap.Stringer("kind", v.Kind()),
		zap.Stringer("compression", cfg.compression),
		zap.Int64("raw_size", stats.OriginalSize),
		zap.Int64("stored_size", stats.CompressedSize),
		zap.Float64("ratio", stats.CompressionRatio()),
	)

	return nil
}

func writeAtomic(path string, header, payload []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return errs.NewIOError("create", path, err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(header); err != nil {
		return errs.NewIOError("write", tmpPath, err)
	}

	if _, err = tmp.Write(payload); err != nil {
		return errs.NewIOError("write", tmpPath, err)
	}

	if err = tmp.Sync(); err != nil {
		return errs.NewIOError("sync", tmpPath, err)
	}

	if err = tmp.Close(); err != nil {
		return errs.NewIOError("close", tmpPath, err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return errs.NewIOError("rename", path, err)
	}

	return nil
}

// LoadFromFile reads the structure stored at path into v.
//
// v is typically the zero value of the expected type, e.g. &vector.EncVector{}.
// A fixed-width IntVector target only accepts files of its own width class.
// v is unchanged on error.
//
// Returns:
//   - error: an IOError (matching ErrIO) when the file cannot be read,
//     ErrKindMismatch when the file holds another kind of structure,
//     ErrChecksumMismatch when the payload does not verify, and
//     ErrCorruptFormat for any other inconsistency
func LoadFromFile(path string, v Storable, opts ...Option) error {
	if v == nil {
		return errors.Wrap(errs.ErrInvalidOption, "nil structure")
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errs.NewIOError("read", path, err)
	}

	header, err := section.ParseHeader(data)
	if err != nil {
		return errors.Wrapf(err, "load %s", path)
	}

	if header.Kind != v.Kind() {
		return errors.Wrapf(errs.ErrKindMismatch, "%s holds %s, want %s", path, header.Kind, v.Kind())
	}

	if err := decodePayload(&header, data[section.HeaderSize:], v); err != nil {
		return errors.Wrapf(err, "load %s", path)
	}

	cfg.logger.Debug("loaded structure",
		zap.String("path", path),
		zap.Stringer("kind", header.Kind),
		zap.Stringer("compression", header.Compression),
		zap.Uint64("raw_size", header.RawSize),
		zap.Uint64("stored_size", header.StoredSize),
	)

	return nil
}

// LoadAny reads the structure stored at path, whatever its kind. The concrete
// type of the result is selected by the header kind: *intvector.IntVector,
// *vector.EncVector, *vector.VLCVector or *vector.DACVector.
func LoadAny(path string, opts ...Option) (vector.Vector, error) {
	header, err := ReadHeader(path)
	if err != nil {
		return nil, err
	}

	v := vector.New(header.Kind)
	if class := format.WidthClass(header.Variant); header.Kind == format.KindIntVector && class.IsFixed() {
		// Only a fixed target preserves the width class of the stored vector.
		fixed, err := intvector.NewFixed(class, 0, 0)
		if err != nil {
			return nil, errors.Wrapf(errs.ErrCorruptFormat, "load %s: %v", path, err)
		}
		v = fixed
	}

	if err := LoadFromFile(path, v, opts...); err != nil {
		return nil, err
	}

	return v, nil
}

// ReadHeader reads and validates the header of the file at path without
// loading the payload.
func ReadHeader(path string) (section.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return section.Header{}, errs.NewIOError("open", path, err)
	}
	defer f.Close()

	var buf [section.HeaderSize]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return section.Header{}, errors.Wrapf(errs.ErrCorruptFormat, "%s: file shorter than header", path)
		}

		return section.Header{}, errs.NewIOError("read", path, err)
	}

	header, err := section.ParseHeader(buf[:])
	if err != nil {
		return section.Header{}, errors.Wrapf(err, "read header of %s", path)
	}

	return header, nil
}

func decodePayload(header *section.Header, stored []byte, v Storable) error {
	if uint64(len(stored)) != header.StoredSize {
		return errors.Wrapf(errs.ErrCorruptFormat, "stored payload is %d bytes, header says %d", len(stored), header.StoredSize)
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return errors.Wrap(errs.ErrCorruptFormat, err.Error())
	}

	raw, err := compress.DecompressSized(codec, stored, header.RawSize)
	if err != nil {
		return errors.WithSecondaryError(
			errors.Wrapf(errs.ErrCorruptFormat, "decompress %s payload", header.Compression), err)
	}

	if uint64(len(raw)) != header.RawSize {
		return errors.Wrapf(errs.ErrCorruptFormat, "payload is %d bytes, header says %d", len(raw), header.RawSize)
	}

	if !hash.Verify(raw, header.Checksum) {
		return errs.ErrChecksumMismatch
	}

	target := scratchFor(v)
	n, err := target.DecodeBinary(raw, header.Flag.GetEndianEngine())
	if err != nil {
		return err
	}

	if n != len(raw) {
		return errors.Wrapf(errs.ErrCorruptFormat, "%d trailing payload bytes", len(raw)-n)
	}

	if err := checkVariant(header, target); err != nil {
		return err
	}

	assign(v, target)

	return nil
}

// scratchFor returns an empty decode target of the same type and width class
// as v, so that v is only replaced once the payload fully verifies. Storable
// types outside sdsl are decoded in place.
func scratchFor(v Storable) Storable {
	switch t := v.(type) {
	case *intvector.IntVector:
		if class := t.WidthClass(); class.IsFixed() {
			fixed, err := intvector.NewFixed(class, 0, 0)
			if err != nil {
				panic(errors.AssertionFailedf("empty %s vector: %v", class, err))
			}

			return fixed
		}

		return &intvector.IntVector{}
	case *vector.EncVector:
		return &vector.EncVector{}
	case *vector.VLCVector:
		return &vector.VLCVector{}
	case *vector.DACVector:
		return &vector.DACVector{}
	default:
		return v
	}
}

// assign moves the decoded scratch value into dst.
func assign(dst, src Storable) {
	switch d := dst.(type) {
	case *intvector.IntVector:
		d.Swap(src.(*intvector.IntVector))
	case *vector.EncVector:
		*d = *src.(*vector.EncVector)
	case *vector.VLCVector:
		*d = *src.(*vector.VLCVector)
	case *vector.DACVector:
		*d = *src.(*vector.DACVector)
	}
}

// checkVariant compares the decoded structure against the header tag. A
// runtime-width IntVector target accepts any width class.
func checkVariant(header *section.Header, v Storable) error {
	if header.Kind == format.KindIntVector && v.Variant() == uint8(format.WidthRuntime) {
		return nil
	}

	if v.Variant() != header.Variant {
		return errors.Wrapf(errs.ErrCorruptFormat, "variant %d, header says %d", v.Variant(), header.Variant)
	}

	return nil
}
