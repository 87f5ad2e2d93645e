// Package fuzzyfind is an in-memory, multi-strategy fuzzy text search
// engine: exact, prefix, substring, fuzzy (edit-distance), n-gram,
// phonetic, compound-word, and synonym matching, blended with optional
// BM25 ranking and combined with phrase search, over either raw strings
// or field-structured records.
package fuzzyfind

import (
	"github.com/google/uuid"

	"github.com/Vedant9500/fuzzyfind/internal/fscache"
	"github.com/Vedant9500/fuzzyfind/internal/fsindex"
	"github.com/Vedant9500/fuzzyfind/internal/fsmetrics"
	"github.com/Vedant9500/fuzzyfind/internal/fsnapshot"
	"github.com/Vedant9500/fuzzyfind/internal/fsquery"
	"github.com/Vedant9500/fuzzyfind/internal/lang"
)

// Item is one unit of input to Build/Add: a raw string, or a record
// when the engine was built with fields.
type Item struct {
	Text   string
	Fields map[string]string
}

// Engine is a built, searchable index plus its orchestrator and shared
// result cache. The zero value is not usable; construct with Build.
type Engine struct {
	id     string
	cfg    Config
	fields []string

	registry *lang.Registry
	index    *fsindex.Index
	orch     *fsquery.Orchestrator
	metrics  *fsmetrics.MetricsCollector
}

// Build validates cfg, resolves language processors, and constructs a
// new engine over items. fields declares record mode (nil/empty keeps
// raw-string mode).
func Build(cfg Config, fields []string, items []Item) (*Engine, error) {
	if err := cfg.validateParams(); err != nil {
		return nil, err
	}

	registry := lang.NewRegistry()
	processors, _, err := resolveProcessors(registry, cfg.Languages, cfg.CustomSynonyms, cfg.CustomNormalizer)
	if err != nil {
		return nil, err
	}

	metrics := fsmetrics.NewMetricsCollector()
	timer := metrics.Timer("engine_build", map[string]string{"mode": recordModeTag(fields)})
	done := timer.Time()
	defer done()

	idx, err := fsindex.Build(cfg.toIndexConfig(), processors, fields, cfg.FieldWeights, toIndexItems(items))
	if err != nil {
		return nil, err
	}
	metrics.Gauge("engine_documents", nil).Set(float64(idx.DocCount()))

	var cache *fscache.SearchCache
	if cfg.EnableCache {
		cache = fscache.NewSearchCache(cfg.CacheSize)
	}

	return &Engine{
		id:       uuid.NewString(),
		cfg:      cfg,
		fields:   fields,
		registry: registry,
		index:    idx,
		orch:     fsquery.New(idx, cache),
		metrics:  metrics,
	}, nil
}

// ID returns the engine instance's build-scoped identifier, stamped at
// Build time.
func (e *Engine) ID() string { return e.id }

// DocCount returns the number of live documents in the index.
func (e *Engine) DocCount() int { return e.index.DocCount() }

// Add ingests items into the running index (idempotent by canonical
// base id) and invalidates the result cache.
func (e *Engine) Add(items []Item) error {
	timer := e.metrics.Timer("engine_add", nil)
	done := timer.Time()
	defer done()

	if err := e.index.Add(toIndexItems(items)); err != nil {
		return err
	}
	e.metrics.Gauge("engine_documents", nil).Set(float64(e.index.DocCount()))
	e.orch.Invalidate()
	return nil
}

// Remove deletes documents by canonical base id (a no-op for ids not
// present) and invalidates the result cache.
func (e *Engine) Remove(baseIDs []string) {
	timer := e.metrics.Timer("engine_remove", nil)
	done := timer.Time()
	defer done()

	e.index.Remove(baseIDs)
	e.metrics.Gauge("engine_documents", nil).Set(float64(e.index.DocCount()))
	e.orch.Invalidate()
}

// Search runs the full query pipeline (parsing, stopwords, phrase
// routing, strategy fan-out, scoring, filters, sort) and returns up to
// opts.MaxResults ranked results.
func (e *Engine) Search(query string, opts SearchOptions) []Result {
	timer := e.metrics.Timer("engine_search", nil)
	done := timer.Time()
	defer done()

	raw := e.orch.Search(query, e.cfg.toSearchOptions(opts))
	results := make([]Result, len(raw))
	for i, r := range raw {
		results[i] = fromQueryResult(r)
	}

	e.metrics.Counter("engine_search_total", nil).Inc()
	return results
}

// Metrics exposes every metric the engine has recorded (build/add/
// remove/search timers, document-count gauges), for a host to publish
// to its own observability stack.
func (e *Engine) Metrics() []fsmetrics.Metric { return e.metrics.GetAllMetrics() }

// CacheStats reports the result cache's hit/miss/eviction counters, or
// the zero value if caching is disabled.
func (e *Engine) CacheStats() fscache.CacheStats {
	return e.orch.CacheStats()
}

// Save writes the engine's index to path as a JSON snapshot (§6's
// external snapshot format). The result cache is not persisted; it
// starts empty on Load.
func (e *Engine) Save(path string) error {
	return fsnapshot.Save(e.index, path)
}

// Load reconstructs an engine from a snapshot file previously written
// by Save. cfg supplies the cache/search-time settings a snapshot
// doesn't carry (enableCache, cacheSize, stopwords, feature gating);
// the index's own build-time configuration is restored verbatim from
// the snapshot.
func Load(path string, cfg Config) (*Engine, error) {
	registry := lang.NewRegistry()
	idx, err := fsnapshot.Load(path, registry)
	if err != nil {
		return nil, err
	}

	var cache *fscache.SearchCache
	if cfg.EnableCache {
		cache = fscache.NewSearchCache(cfg.CacheSize)
	}

	cfg.Languages = idx.LanguageTags()
	return &Engine{
		id:       uuid.NewString(),
		cfg:      cfg,
		fields:   idx.FieldNames(),
		registry: registry,
		index:    idx,
		orch:     fsquery.New(idx, cache),
		metrics:  fsmetrics.NewMetricsCollector(),
	}, nil
}

func toIndexItems(items []Item) []fsindex.Item {
	out := make([]fsindex.Item, len(items))
	for i, it := range items {
		out[i] = fsindex.Item{Text: it.Text, Fields: it.Fields}
	}
	return out
}

func recordModeTag(fields []string) string {
	if len(fields) > 0 {
		return "record"
	}
	return "raw"
}
