// Package container provides dependency injection for the accountbook application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"fjacquet/accountbook/internal/advisor"
	"fjacquet/accountbook/internal/config"
	"fjacquet/accountbook/internal/ledger"
	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/ratecache"
	"fjacquet/accountbook/internal/ratesource"
	"fjacquet/accountbook/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger  logging.Logger
	config  *config.Config
	now     func() time.Time
	fetcher ratesource.Fetcher
	rates   *ratecache.Cache
	backend store.Backend
	store   *store.Store

	ledger   *ledger.Ledger
	budgets  *ledger.BudgetSettings
	goals    *ledger.GoalBook
	advisor  advisor.Advisor
	recorder *ledger.Recorder
}

// Option overrides a dependency, mostly for tests.
type Option func(*options)

type options struct {
	logger  logging.Logger
	fetcher ratesource.Fetcher
	backend store.Backend
	now     func() time.Time
}

// WithLogger replaces the logger built from configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithFetcher replaces the bank feed client.
func WithFetcher(f ratesource.Fetcher) Option {
	return func(o *options) { o.fetcher = f }
}

// WithBackend replaces the configured storage backend.
func WithBackend(b store.Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewContainer creates and wires all application dependencies. Persisted
// state is loaded before it returns.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	fallback, err := cfg.FallbackRates()
	if err != nil {
		return nil, err
	}

	fetcher := o.fetcher
	if fetcher == nil {
		fetcher = ratesource.NewClient(
			ratesource.WithBaseURL(cfg.Rates.BaseURL),
			ratesource.WithAuthKey(cfg.Rates.AuthKey),
			ratesource.WithDataCode(cfg.Rates.Data),
			ratesource.WithTimeout(time.Duration(cfg.Rates.TimeoutSeconds)*time.Second),
		)
		if cfg.Rates.AuthKey == "" {
			logger.Warn("No bank API key configured, fallback exchange rates will be used")
		}
	}

	rates := ratecache.New(fetcher,
		ratecache.WithFallbackRates(fallback),
		ratecache.WithClock(o.now),
		ratecache.WithLogger(logger),
		ratecache.WithFetchTimeout(time.Duration(cfg.Rates.TimeoutSeconds)*time.Second),
	)

	backend := o.backend
	if backend == nil {
		backend, err = NewBackend(cfg)
		if err != nil {
			return nil, err
		}
	}
	repo := store.New(backend, logger)

	book := ledger.New(repo, logger)
	budgets := ledger.NewBudgetSettings(repo, logger)
	goals := ledger.NewGoalBook(repo, logger)
	loaders := []struct {
		name string
		load func() error
	}{
		{"transactions", book.Load},
		{"budget", budgets.Load},
		{"goals", goals.Load},
	}
	for _, l := range loaders {
		if err := l.load(); err != nil {
			_ = backend.Close()
			return nil, fmt.Errorf("failed to load %s: %w", l.name, err)
		}
	}

	rules, err := store.LoadKeywordRules(cfg.Advisor.RulesFile)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	adv := advisor.NewKeywordAdvisor(rules, logger)

	recorder := ledger.NewRecorder(book, rates, adv, logger, ledger.WithRecorderClock(o.now))

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldBackend, cfg.Storage.Backend),
		logging.F(logging.FieldCount, book.Len()))

	return &Container{
		logger:   logger,
		config:   cfg,
		now:      o.now,
		fetcher:  fetcher,
		rates:    rates,
		backend:  backend,
		store:    repo,
		ledger:   book,
		budgets:  budgets,
		goals:    goals,
		advisor:  adv,
		recorder: recorder,
	}, nil
}

// NewBackend opens the storage backend selected by cfg.
func NewBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile, "":
		return store.NewFileBackend(cfg.Storage.Directory)
	case config.BackendSQLite:
		return store.NewSQLiteBackend(cfg.Storage.SQLitePath)
	case config.BackendMemory:
		return store.NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// Now returns the current time from the container's clock.
func (c *Container) Now() time.Time {
	return c.now()
}

// GetFetcher returns the bank feed client.
func (c *Container) GetFetcher() ratesource.Fetcher {
	return c.fetcher
}

// GetRates returns the exchange rate cache.
func (c *Container) GetRates() *ratecache.Cache {
	return c.rates
}

// GetStore returns the persistence layer.
func (c *Container) GetStore() *store.Store {
	return c.store
}

// GetLedger returns the transaction store.
func (c *Container) GetLedger() *ledger.Ledger {
	return c.ledger
}

// GetBudgets returns the budget settings.
func (c *Container) GetBudgets() *ledger.BudgetSettings {
	return c.budgets
}

// GetGoals returns the goal book.
func (c *Container) GetGoals() *ledger.GoalBook {
	return c.goals
}

// GetAdvisor returns the advisory collaborator.
func (c *Container) GetAdvisor() advisor.Advisor {
	return c.advisor
}

// GetRecorder returns the transaction entry service.
func (c *Container) GetRecorder() *ledger.Recorder {
	return c.recorder
}

// Close releases the storage backend.
func (c *Container) Close() error {
	if err := c.backend.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
