package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// input is a document source with the closers of every layer under it.
type input struct {
	io.Reader
	closers []func() error
}

func (in *input) Close() error {
	var errs []error
	for i := len(in.closers) - 1; i >= 0; i-- {
		errs = append(errs, in.closers[i]())
	}
	return errors.Join(errs...)
}

// openInput opens path, or reads stdin for "-". Files ending in .gz or
// .zst are decompressed on the fly.
func openInput(path string, stdin io.Reader) (*input, error) {
	in := &input{Reader: stdin}
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		in.Reader = f
		in.closers = append(in.closers, f.Close)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(in.Reader)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("open gzip %s: %w", path, err), in.Close())
		}
		in.Reader = zr
		in.closers = append(in.closers, zr.Close)
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(in.Reader)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("open zstd %s: %w", path, err), in.Close())
		}
		in.Reader = zr
		in.closers = append(in.closers, func() error {
			zr.Close()
			return nil
		})
	}
	return in, nil
}
