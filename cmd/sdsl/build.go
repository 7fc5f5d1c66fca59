package main

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
	"github.com/arloliu/sdsl/intvector"
	"github.com/arloliu/sdsl/storage"
	"github.com/arloliu/sdsl/vector"
)

type buildFlags struct {
	kind        string
	coder       string
	compression string
	density     uint64
	chunkWidth  uint8
	width       uint8
	bigEndian   bool
	in          string
	out         string
}

func newBuildCommand(a *app) *cobra.Command {
	f := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a structure from a file of integers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBuild(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.kind, "kind", "int", "structure kind: int, enc, vlc or dac")
	flags.StringVar(&f.coder, "coder", "delta", "enc/vlc coder: gamma, delta, fibonacci or comma2")
	flags.Uint64Var(&f.density, "density", vector.DefaultSampleDensity, "enc/vlc sample density")
	flags.Uint8Var(&f.chunkWidth, "chunk-width", vector.DefaultChunkWidth, "dac chunk width in bits")
	flags.Uint8Var(&f.width, "width", 0, "int element width in bits, 0 for minimal")
	flags.StringVar(&f.compression, "compression", "none", "payload compression: none, zstd, s2 or lz4")
	flags.BoolVar(&f.bigEndian, "big-endian", false, "store in big-endian byte order")
	flags.StringVar(&f.in, "in", "", "input file, - for stdin")
	flags.StringVar(&f.out, "out", "", "output file")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, f *buildFlags) error {
	kind, err := format.ParseVectorKind(f.kind)
	if err != nil {
		return err
	}

	compression, err := format.ParseCompressionType(f.compression)
	if err != nil {
		return err
	}

	values, err := readValues(cmd.InOrStdin(), f.in)
	if err != nil {
		return err
	}

	width := f.width
	if width == 0 {
		width = intvector.AutoWidth
	}

	iv, err := intvector.FromValues(values, width)
	if err != nil {
		return err
	}

	var v storage.Storable
	switch kind {
	case format.KindIntVector:
		v = iv
	case format.KindEncVector, format.KindVLCVector:
		coder, err := format.ParseCoderType(f.coder)
		if err != nil {
			return err
		}
		opts := []vector.Option{vector.WithCoder(coder), vector.WithSampleDensity(f.density)}

		if kind == format.KindEncVector {
			v, err = vector.NewEncVector(iv, opts...)
		} else {
			v, err = vector.NewVLCVector(iv, opts...)
		}
		if err != nil {
			return err
		}
	case format.KindDACVector:
		v, err = vector.NewDACVector(iv, vector.WithChunkWidth(f.chunkWidth))
		if err != nil {
			return err
		}
	}

	opts := []storage.Option{storage.WithCompression(compression)}
	if f.bigEndian {
		opts = append(opts, storage.WithBigEndian())
	}

	if err := storage.StoreToFile(f.out, v, a.storageOptions(opts...)...); err != nil {
		return err
	}

	a.logger.Info("built structure",
		zap.Stringer("kind", kind),
		zap.Int("elements", len(values)),
		zap.String("out", f.out),
	)

	return nil
}

// readValues parses white space separated unsigned integers from path, or from
// stdin when path is "-".
func readValues(stdin io.Reader, path string) ([]uint64, error) {
	r := stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, errs.NewIOError("open", path, err)
		}
		defer file.Close()
		r = file
	}

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var values []uint64
	for scanner.Scan() {
		v, err := strconv.ParseUint(scanner.Text(), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(errs.ErrInvalidOption, "value %d of %s: %v", len(values), path, err)
		}
		values = append(values, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, errs.NewIOError("read", path, err)
	}

	return values, nil
}
