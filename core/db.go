package core

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/dgraph-io/ristretto"
)

type dbEntry struct {
	name    string
	acc     *Accumulator
	version int64
	mu      sync.Mutex
}

// DB is a registry of independent named accumulators. Unlike a bare
// Accumulator it is safe for concurrent use. Summaries are cached under
// (id, version, op) and every non-empty append bumps the version, so a cached
// summary is never stale.
type DB struct {
	config  *StoreConfig
	cache   *ristretto.Cache
	names   map[string]int64
	entries map[int64]*dbEntry
	nextID  int64
	logger  *slog.Logger
	mu      sync.Mutex
}

func NewDB(config *StoreConfig) (*DB, error) {
	if config == nil {
		config = DefaultStoreConfig()
	}
	if _, err := NewOpSet(config.OperatorNames); err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	db := &DB{
		config:  config,
		names:   make(map[string]int64),
		entries: make(map[int64]*dbEntry),
		logger:  logger,
	}
	if config.CacheEnabled {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: config.CacheNumCounters,
			MaxCost:     config.CacheMaxCost,
			BufferItems: config.CacheBufferItems,
		})
		if err != nil {
			return nil, err
		}
		db.cache = cache
	}
	return db, nil
}

func (db *DB) NewAccumulator(name string) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := db.names[name]; ok {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateAccumulator, name)
	}
	acc, err := NewAccumulatorWithOps(db.config.OperatorNames)
	if err != nil {
		return -1, err
	}

	id := db.nextID
	db.nextID++
	db.names[name] = id
	db.entries[id] = &dbEntry{name: name, acc: acc}
	db.logger.Debug("created accumulator", slog.String("name", name), slog.Int64("id", id))
	return id, nil
}

func (db *DB) Lookup(name string) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	id, ok := db.names[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrAccumulatorNotFound, name)
	}
	return id, nil
}

// Names returns the registered accumulator names, sorted.
func (db *DB) Names() []string {
	db.mu.Lock()
	defer db.mu.Unlock()
	names := make([]string, 0, len(db.names))
	for name := range db.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (db *DB) getEntry(id int64) (*dbEntry, *ristretto.Cache, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	entry, ok := db.entries[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: id %d", ErrAccumulatorNotFound, id)
	}
	return entry, db.cache, nil
}

func (db *DB) Append(id int64, chunk *Table) error {
	entry, _, err := db.getEntry(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	before := entry.acc.NumRows()
	if err := entry.acc.Append(chunk); err != nil {
		return err
	}
	if entry.acc.NumRows() != before {
		entry.version++
	}
	return nil
}

func (db *DB) Summarize(id int64) (Summary, error) {
	return db.Query(id, "sum")
}

func (db *DB) Query(id int64, op string) (Summary, error) {
	entry, cache, err := db.getEntry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	key := fmt.Sprintf("%d/%d/%s", id, entry.version, op)
	if cache != nil {
		if cached, found := cache.Get(key); found {
			return cached.(Summary).Copy(), nil
		}
	}

	summary, err := entry.acc.Query(op)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		cache.Set(key, summary.Copy(), int64(len(summary))+1)
	}
	return summary, nil
}

// Data returns a copy of the rows held by accumulator id.
func (db *DB) Data(id int64) (*Table, error) {
	entry, _, err := db.getEntry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.acc.Data(), nil
}

// Drop removes accumulator id. Ids are never reused, so cached summaries for
// it simply age out.
func (db *DB) Drop(id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	entry, ok := db.entries[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrAccumulatorNotFound, id)
	}
	delete(db.entries, id)
	delete(db.names, entry.name)
	db.logger.Debug("dropped accumulator", slog.String("name", entry.name), slog.Int64("id", id))
	return nil
}

// Close releases the summary cache. It must not run concurrently with other
// calls on db.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.cache != nil {
		db.cache.Close()
		db.cache = nil
	}
	db.entries = make(map[int64]*dbEntry)
	db.names = make(map[string]int64)
	return nil
}
