package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// ErrCatalogEmpty reports that the provider delivered zero plant records. It
// is surfaced as a degraded-service condition, never silently treated as a
// no-matches outcome.
var ErrCatalogEmpty = errors.New("catalog is empty")

// Source delivers raw catalog records from wherever the catalog lives (TSV
// export, MySQL tables). Implementations are read-only.
type Source interface {
	FetchPlants(ctx context.Context) ([]Raw, error)
	FetchProducts(ctx context.Context) ([]Raw, error)
	FetchKits(ctx context.Context) ([]Raw, error)
}

// Snapshot is an immutable view of the catalog. In-flight requests keep the
// snapshot they started with; a refresh publishes a new one atomically.
type Snapshot struct {
	Plants    []PlantRecord
	Products  []ProductRecord
	Kits      []KitRecord
	RefreshAt time.Time
}

type Store struct {
	log     logx.Logger
	source  Source
	current atomic.Pointer[Snapshot]
}

func NewStore(source Source) *Store {
	return &Store{
		log:    logx.WithContext(context.Background()),
		source: source,
	}
}

// Current returns the latest published snapshot, or ErrCatalogEmpty when no
// refresh has succeeded yet.
func (s *Store) Current() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil || len(snap.Plants) == 0 {
		return nil, ErrCatalogEmpty
	}
	return snap, nil
}

// Refresh pulls the source, coerces every record into the typed schema and
// publishes the result as the new snapshot. A failure leaves the previous
// snapshot in place.
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	rawPlants, err := s.source.FetchPlants(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch plants: %w", err)
	}
	rawProducts, err := s.source.FetchProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	rawKits, err := s.source.FetchKits(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch kits: %w", err)
	}

	snap := &Snapshot{RefreshAt: time.Now()}
	for _, raw := range rawPlants {
		plant, err := CoercePlant(raw)
		if err != nil {
			return nil, err
		}
		snap.Plants = append(snap.Plants, plant)
	}
	for _, raw := range rawProducts {
		product, err := CoerceProduct(raw)
		if err != nil {
			return nil, err
		}
		snap.Products = append(snap.Products, product)
	}
	for _, raw := range rawKits {
		kit, err := CoerceKit(raw)
		if err != nil {
			return nil, err
		}
		snap.Kits = append(snap.Kits, kit)
	}

	if len(snap.Plants) == 0 {
		return nil, ErrCatalogEmpty
	}

	s.current.Store(snap)
	s.log.Infof("catalog snapshot published: %d plants, %d products, %d kits",
		len(snap.Plants), len(snap.Products), len(snap.Kits))
	return snap, nil
}
