package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// FileSource loads the catalog from tab-separated exports (one file per
// record kind, header row first). Used for local development and the sample
// catalog shipped with the service.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) FetchPlants(ctx context.Context) ([]Raw, error) {
	return s.load(ctx, "plants.tsv")
}

func (s *FileSource) FetchProducts(ctx context.Context) ([]Raw, error) {
	return s.load(ctx, "products.tsv")
}

func (s *FileSource) FetchKits(ctx context.Context) ([]Raw, error) {
	return s.load(ctx, "kits.tsv")
}

func (s *FileSource) load(ctx context.Context, name string) ([]Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]Raw, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raw := make(Raw, len(header))
		for i, col := range header {
			if i < len(row) {
				raw[col] = row[i]
			}
		}
		records = append(records, raw)
	}
	return records, nil
}
