// Package loader reads course lists from files and directories into a
// catalog. A load either yields a complete catalog or an error; partial
// catalogs are never returned.
package loader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/flarebyte/coursegraph/internal/catalog"
	"github.com/flarebyte/coursegraph/internal/ctxlog"
)

type decodeFunc func(io.Reader) ([]catalog.Record, error)

// Load dispatches on path: directories are discovered with LoadDir, .yaml and
// .yml files are decoded as YAML and everything else as JSON.
func Load(ctx context.Context, path string, opts ...catalog.Option) (*catalog.Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if info.IsDir() {
		return LoadDir(ctx, path, opts...)
	}
	return loadFile(ctx, path, decoderFor(path), opts)
}

// LoadJSON loads a single JSON course list.
func LoadJSON(ctx context.Context, path string, opts ...catalog.Option) (*catalog.Catalog, error) {
	return loadFile(ctx, path, DecodeJSON, opts)
}

// LoadYAML loads a single YAML course list.
func LoadYAML(ctx context.Context, path string, opts ...catalog.Option) (*catalog.Catalog, error) {
	return loadFile(ctx, path, DecodeYAML, opts)
}

// LoadDir loads every course list found under root (see Discover) into one
// catalog. Files are decoded in parallel but merged in sorted path order, so
// duplicate keys resolve the same way on every run.
func LoadDir(ctx context.Context, root string, opts ...catalog.Option) (*catalog.Catalog, error) {
	files, err := Discover(ctx, root)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("discovered course lists", "root", root, "files", len(files))
	type decoded struct {
		records []catalog.Record
		err     error
	}
	results := parallelMap(len(files), workerCount(len(files)), func(i int) decoded {
		if err := ctx.Err(); err != nil {
			return decoded{err: err}
		}
		recs, err := readFile(files[i], decoderFor(files[i]))
		return decoded{records: recs, err: err}
	})
	b := catalog.NewBuilder(opts...)
	for i, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		for _, rec := range r.records {
			b.Add(rec)
		}
		ctxlog.FromContext(ctx).Debug("loaded course list", "path", files[i], "records", len(r.records))
	}
	return b.Build(), nil
}

// LoadText checks that path is readable, then reports ErrTextNotSupported.
func LoadText(ctx context.Context, path string) (*catalog.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	_ = f.Close()
	ctxlog.FromContext(ctx).Debug("free-text course list rejected", "path", path)
	return nil, fmt.Errorf("%s: %w", path, ErrTextNotSupported)
}

func decoderFor(path string) decodeFunc {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML
	default:
		return DecodeJSON
	}
}

func loadFile(ctx context.Context, path string, decode decodeFunc, opts []catalog.Option) (*catalog.Catalog, error) {
	b := catalog.NewBuilder(opts...)
	if err := addFile(ctx, b, path, decode); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

func addFile(ctx context.Context, b *catalog.Builder, path string, decode decodeFunc) error {
	recs, err := readFile(path, decode)
	if err != nil {
		return err
	}
	for _, r := range recs {
		b.Add(r)
	}
	ctxlog.FromContext(ctx).Debug("loaded course list", "path", path, "records", len(recs))
	return nil
}

func readFile(path string, decode decodeFunc) ([]catalog.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	recs, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return recs, nil
}
