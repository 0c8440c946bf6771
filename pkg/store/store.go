// Package store persists built plots so that a viewer process can serve them.
//
// A [Record] is a plot's identity plus its encoded spec. Backends:
//   - [Memory]: in-process storage for tests and single-process use
//   - [File]: one JSON file per plot, shared between CLI invocations
//   - [Redis]: Redis-backed storage for a viewer shared between machines
//   - [Mongo]: a MongoDB collection
//
// Open builds a backend from a [Config]:
//
//	s, err := store.Open(ctx, store.Config{Backend: store.BackendFile})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//	rec, err := s.Get(ctx, id)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // unknown plot
//	}
package store

import (
	"context"
	"sort"
	"time"

	"github.com/matzehuels/showviz/pkg/chart"
	"github.com/matzehuels/showviz/pkg/errors"
	"github.com/matzehuels/showviz/pkg/plot"
)

// ErrNotFound is returned when a plot does not exist.
var ErrNotFound = errors.New(errors.ErrCodeNotFound, "plot not found")

// Record is a stored plot.
type Record struct {
	ID        string     `json:"id" bson:"_id"`
	Kind      chart.Kind `json:"kind" bson:"kind"`
	Title     string     `json:"title" bson:"title"`
	Spec      []byte     `json:"spec" bson:"spec"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
}

// FromPlot builds a record from a render handle.
func FromPlot(p *plot.Plot) (Record, error) {
	spec, err := p.Spec()
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "plot %s", p.ID())
	}
	return Record{
		ID:        p.ID(),
		Kind:      p.Kind(),
		Title:     spec.DisplayTitle(),
		Spec:      p.Ref().Spec,
		CreatedAt: spec.CreatedAt,
	}, nil
}

// Store persists plot records.
type Store interface {
	// Get returns the record with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Record, error)

	// Put stores a record, replacing any record with the same ID.
	Put(ctx context.Context, rec Record) error

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all records, newest first.
	List(ctx context.Context) ([]Record, error)

	// Close releases resources held by the store.
	Close() error
}

// =============================================================================
// Configuration
// =============================================================================

// Backend names.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Backends lists the supported backends.
var Backends = []string{BackendMemory, BackendFile, BackendRedis, BackendMongo}

// Config selects and configures a backend.
type Config struct {
	Backend       string
	Dir           string // file backend
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MongoURI      string
	MongoDatabase string
}

// Open creates the backend named by cfg.Backend. An empty backend means memory.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemory(), nil
	case BackendFile:
		return NewFile(cfg.Dir)
	case BackendRedis:
		return NewRedis(ctx, RedisConfig{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
	case BackendMongo:
		return NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q", cfg.Backend)
	}
}

func validateRecord(rec Record) error {
	if rec.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "record has no ID")
	}
	if len(rec.Spec) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "record %s has no spec", rec.ID)
	}
	return nil
}

func sortNewestFirst(recs []Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].ID < recs[j].ID
		}
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
}
