package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/palmnatthakarn/Admin-Dashboard/internal/domain"
	"github.com/palmnatthakarn/Admin-Dashboard/pkg/apperrors"
)

// SchemaError reports a source document whose top-level shape is not
// {"data": [...], "pagination": {...}}.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "invalid catalog document: " + e.Reason
}

// sourceDocument is the expected shape of the on-disk catalog file. The
// pagination object is carried but unused; only the data array matters.
type sourceDocument struct {
	Data       []domain.Product `json:"data"`
	Pagination map[string]any   `json:"pagination"`
}

// Store owns the catalog snapshot and its readiness state. A RWMutex guards
// the snapshot pair: shared for queries, exclusive for the single-field price
// write and for the wholesale swap on load/reload.
type Store struct {
	names domain.DealerNames
	log   *slog.Logger

	mu    sync.RWMutex
	ready bool
	snap  snapshot
}

// New creates an unready store. Traffic must be gated until the first Load
// completes.
func New(names domain.DealerNames, log *slog.Logger) *Store {
	return &Store{
		names: names,
		log:   log,
		snap:  emptySnapshot(),
	}
}

// Load reads the catalog document at path, builds the derived indexes, and
// swaps the snapshot in atomically. On any failure it logs the error and
// swaps in an empty ready snapshot instead: the service becomes
// queryable-but-empty rather than permanently gated. The returned error
// reports what went wrong but never prevents readiness.
func (s *Store) Load(path string) error {
	start := time.Now()

	snap, err := loadSnapshot(path, s.names)
	if err != nil {
		s.log.Error("catalog load failed, serving empty dataset",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		snap = emptySnapshot()
	}

	s.mu.Lock()
	s.snap = snap
	s.ready = true
	s.mu.Unlock()

	s.log.Info("catalog loaded",
		slog.String("path", path),
		slog.Int("products", len(snap.products)),
		slog.Int("dealers", len(snap.dealers)),
		slog.Duration("duration", time.Since(start)),
	)
	return err
}

func loadSnapshot(path string, names domain.DealerNames) (snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return snapshot{}, fmt.Errorf("read catalog file: %w", err)
	}

	var doc sourceDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return snapshot{}, &SchemaError{Reason: err.Error()}
	}
	if doc.Data == nil {
		return snapshot{}, &SchemaError{Reason: `expected {"data": [], "pagination": {}}`}
	}

	return buildSnapshot(doc.Data, names), nil
}

// Ready reports whether the first load (success or fallback) has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Counts returns the product and dealer-directory sizes for health reporting.
func (s *Store) Counts() (products, dealers int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snap.products), len(s.snap.dealers)
}

// UpdatePrice locates the product with the given item code and runs apply on
// it under the exclusive lock. apply mutates the live record in place, so
// subsequent queries see the new value immediately; the dealer index and
// search blobs stay valid because a price write changes neither dealer
// membership nor search text.
func (s *Store) UpdatePrice(itemCode string, apply func(*domain.Product) (domain.UpdatedPrice, error)) (domain.UpdatedPrice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snap.products {
		if s.snap.products[i].ItemCode == itemCode {
			return apply(&s.snap.products[i])
		}
	}
	return domain.UpdatedPrice{}, apperrors.NotFound("Product not found.")
}
