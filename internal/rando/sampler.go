// Package rando draws random entries from flat-file databases.
package rando

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/goblinking/internal/registry"
	"github.com/samdwyer/goblinking/internal/telemetry"
)

const (
	// DefaultNumItems is the number of items Equipment draws when the caller has no preference.
	DefaultNumItems = 10
	// DefaultVerbose controls whether Equipment prefixes entries with their category.
	DefaultVerbose = true
)

// Catalog is the set of databases Equipment draws categories from.
// *registry.Registry implements it.
type Catalog interface {
	Count() int
	Pick(rng *rand.Rand) registry.DatabaseRef
}

// Sampler draws entries using an injected random source.
// It is not safe for concurrent use because *rand.Rand is not.
type Sampler struct {
	rng    *rand.Rand
	tracer trace.Tracer
}

// NewSampler creates a sampler. A nil tracer disables tracing.
func NewSampler(rng *rand.Rand, tracer trace.Tracer) *Sampler {
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}
	return &Sampler{rng: rng, tracer: tracer}
}

// One returns a uniformly random entry from the database at path.
// Entries repeated in the file are proportionally more likely.
func (s *Sampler) One(ctx context.Context, path string) (string, error) {
	_, span := s.tracer.Start(ctx, "rando.one", trace.WithAttributes(
		attribute.String("db.path", path),
	))
	defer span.End()

	entry, err := s.one(path)
	if err != nil {
		return "", fail(span, err)
	}
	span.SetAttributes(attribute.String("rando.entry", entry))
	return entry, nil
}

func (s *Sampler) one(path string) (string, error) {
	entries, err := ReadEntries(path)
	if err != nil {
		return "", err
	}
	return entries[s.rng.Intn(len(entries))], nil
}

// Unique returns count distinct entries from the database at path, drawn
// without replacement in random order. It fails with ErrInvalidArgument when
// count < 1 and with ErrInsufficientData when the file holds fewer than count
// distinct entries; no partial result is ever returned.
func (s *Sampler) Unique(ctx context.Context, path string, count int) ([]string, error) {
	_, span := s.tracer.Start(ctx, "rando.unique", trace.WithAttributes(
		attribute.String("db.path", path),
		attribute.Int("rando.requested", count),
	))
	defer span.End()

	if count < 1 {
		return nil, fail(span, newError(KindInvalidArgument,
			fmt.Sprintf("count must be greater than 0, got %d", count),
			map[string]string{"path": path, "count": strconv.Itoa(count)}, nil))
	}

	entries, err := ReadEntries(path)
	if err != nil {
		return nil, fail(span, err)
	}
	pool := Dedupe(entries)
	span.SetAttributes(attribute.Int("rando.available", len(pool)))

	if count > len(pool) {
		return nil, fail(span, newError(KindInsufficientData,
			fmt.Sprintf("%s only contains %d distinct entries, which is not enough to randomize %d entries",
				path, len(pool), count),
			map[string]string{
				"path":      path,
				"available": strconv.Itoa(len(pool)),
				"requested": strconv.Itoa(count),
			}, nil))
	}

	result := make([]string, 0, count)
	taken := make(map[string]struct{}, count)
	for len(result) < count {
		i := s.rng.Intn(len(pool))
		candidate := pool[i]
		if _, dup := taken[candidate]; dup {
			return nil, fail(span, newError(KindInternalConsistency,
				fmt.Sprintf("%q drawn from %s was already selected", candidate, path),
				map[string]string{"path": path, "entry": candidate}, nil))
		}
		taken[candidate] = struct{}{}
		result = append(result, candidate)

		// Swap-remove keeps the pool and the result disjoint.
		last := len(pool) - 1
		pool[i] = pool[last]
		pool = pool[:last]
	}
	return result, nil
}

// Equipment returns numItems entries drawn across the catalog. Each draw picks
// a database uniformly at random and then one entry from it, so duplicates are
// allowed. When verbose is set each entry is prefixed with "<category>: ".
func (s *Sampler) Equipment(ctx context.Context, catalog Catalog, numItems int, verbose bool) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "rando.equipment", trace.WithAttributes(
		attribute.Int("rando.requested", numItems),
		attribute.Bool("rando.verbose", verbose),
	))
	defer span.End()

	if numItems < 1 {
		return nil, fail(span, newError(KindInvalidArgument,
			fmt.Sprintf("num_items must be greater than 0, got %d", numItems),
			map[string]string{"count": strconv.Itoa(numItems)}, nil))
	}
	if catalog == nil || catalog.Count() == 0 {
		return nil, fail(span, newError(KindInvalidArgument, "equipment catalog is empty", nil, nil))
	}

	items := make([]string, 0, numItems)
	for range numItems {
		ref := catalog.Pick(s.rng)
		entry, err := s.One(ctx, ref.Location)
		if err != nil {
			return nil, fail(span, err)
		}
		if verbose {
			entry = ref.Name + ": " + entry
		}
		items = append(items, entry)
	}
	return items, nil
}

// fail records err on span and returns it unchanged.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
