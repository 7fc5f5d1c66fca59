package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/intvector"
	"github.com/arloliu/sdsl/storage"
	"github.com/arloliu/sdsl/vector"
)

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print the header and layout of a structure file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInfo(cmd.OutOrStdout(), args[0])
		},
	}
}

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE INDEX...",
		Short: "Print the elements at the given indexes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGet(cmd.OutOrStdout(), args[0], args[1:])
		},
	}
}

func newDumpCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump FILE",
		Short: "Print every element, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDump(cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *app) runInfo(w io.Writer, path string) error {
	header, err := storage.ReadHeader(path)
	if err != nil {
		return err
	}

	v, err := storage.LoadAny(path, a.storageOptions()...)
	if err != nil {
		return err
	}

	byteOrder := "little-endian"
	if header.Flag.IsBigEndian() {
		byteOrder = "big-endian"
	}

	fmt.Fprintf(w, "kind:         %s\n", header.Kind)
	fmt.Fprintf(w, "byte order:   %s\n", byteOrder)
	fmt.Fprintf(w, "compression:  %s\n", header.Compression)
	fmt.Fprintf(w, "raw size:     %d\n", header.RawSize)
	fmt.Fprintf(w, "stored size:  %d\n", header.StoredSize)
	fmt.Fprintf(w, "checksum:     %016x\n", header.Checksum)
	fmt.Fprintf(w, "elements:     %d\n", v.Size())
	fmt.Fprintf(w, "footprint:    %s\n", v.SizeInBytes().HumanReadable())

	switch sv := v.(type) {
	case *intvector.IntVector:
		fmt.Fprintf(w, "width class:  %s\n", sv.WidthClass())
		fmt.Fprintf(w, "width:        %d\n", sv.Width())
	case *vector.EncVector:
		fmt.Fprintf(w, "coder:        %s\n", sv.Coder())
		fmt.Fprintf(w, "density:      %d\n", sv.SampleDensity())
		fmt.Fprintf(w, "code bits:    %d\n", sv.CodeBits())
	case *vector.VLCVector:
		fmt.Fprintf(w, "coder:        %s\n", sv.Coder())
		fmt.Fprintf(w, "density:      %d\n", sv.SampleDensity())
		fmt.Fprintf(w, "code bits:    %d\n", sv.CodeBits())
	case *vector.DACVector:
		fmt.Fprintf(w, "chunk width:  %d\n", sv.ChunkWidth())
		fmt.Fprintf(w, "levels:       %d\n", sv.Levels())
		for l := range sv.Levels() {
			fmt.Fprintf(w, "  level %d:    %d chunks\n", l, sv.LevelSize(l))
		}
	}

	return nil
}

func (a *app) runGet(w io.Writer, path string, indexArgs []string) error {
	v, err := storage.LoadAny(path, a.storageOptions()...)
	if err != nil {
		return err
	}

	for _, arg := range indexArgs {
		i, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return errors.Wrapf(errs.ErrInvalidOption, "index %q", arg)
		}

		val, err := v.Get(i)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, val)
	}

	return nil
}

func (a *app) runDump(w io.Writer, path string) error {
	v, err := storage.LoadAny(path, a.storageOptions()...)
	if err != nil {
		return err
	}

	for val := range v.All() {
		if _, err := fmt.Fprintln(w, val); err != nil {
			return errs.NewIOError("write", "output", err)
		}
	}

	return nil
}
