package core

import "log/slog"

type StoreConfig struct {
	OperatorNames    []string
	CacheEnabled     bool
	CacheNumCounters int64
	CacheMaxCost     int64
	CacheBufferItems int64
	Logger           *slog.Logger
}

func DefaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		OperatorNames:    DefaultOpNames,
		CacheEnabled:     true,
		CacheNumCounters: 1e4,
		CacheMaxCost:     1 << 20,
		CacheBufferItems: 64,
		Logger:           slog.Default(),
	}
}
