package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-wallet/internal/adapter"
	"github.com/MKhiriev/go-id-wallet/internal/config"
	"github.com/MKhiriev/go-id-wallet/internal/logger"
	"github.com/MKhiriev/go-id-wallet/internal/service"
	"github.com/MKhiriev/go-id-wallet/internal/store"
	"github.com/MKhiriev/go-id-wallet/internal/wallet"
	"github.com/MKhiriev/go-id-wallet/internal/workers"
	"github.com/MKhiriev/go-id-wallet/models"
)

// App owns every long-lived component of a client process.
type App struct {
	Engine  *service.Engine
	Workers *workers.Workers

	storages *store.ClientStorages
	logger   *logger.Logger
}

// Option customizes [NewApp].
type Option func(*appOptions)

type appOptions struct {
	notify    func(models.Notice)
	onRefresh func(*models.IdentityRecord, error)
	backend   adapter.BackendAdapter
	logger    *logger.Logger
}

// WithNotifier forwards engine notices to fn.
func WithNotifier(fn func(models.Notice)) Option {
	return func(o *appOptions) { o.notify = fn }
}

// WithRefreshCallback is called after every background refresh.
func WithRefreshCallback(fn func(*models.IdentityRecord, error)) Option {
	return func(o *appOptions) { o.onRefresh = fn }
}

// WithBackend replaces the HTTP backend client.
func WithBackend(backend adapter.BackendAdapter) Option {
	return func(o *appOptions) { o.backend = backend }
}

// WithLogger replaces the logger built from cfg.App.
func WithLogger(log *logger.Logger) Option {
	return func(o *appOptions) { o.logger = log }
}

// NewApp builds the client runtime from cfg. Nothing is started; call
// [App.Restore] and [App.StartWorkers] as needed and [App.Close] when done.
func NewApp(ctx context.Context, cfg *config.ClientConfig, opts ...Option) (*App, error) {
	var o appOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		log = logger.NewClientLogger("client", cfg.App.LogFile).WithLevel(cfg.App.LogLevel)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating client storages: %w", err)
	}

	backend := o.backend
	if backend == nil {
		backend, err = adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("error creating backend adapter: %w", err)
		}
	}

	walletAdapter := wallet.New(wallet.NewStaticProvider(cfg.Wallet.Address), cfg.Wallet.Provider, storages.Sessions, log)

	engineOpts := []service.Option{
		service.WithReconciler(reconcilerFor(cfg.Engine.Reconcile)),
		service.WithFanOutLimit(cfg.Engine.FanOutLimit),
		service.WithNetworkPassphrase(cfg.Wallet.NetworkPassphrase),
	}
	if o.notify != nil {
		engineOpts = append(engineOpts, service.WithNotifier(o.notify))
	}

	engine := service.New(service.Dependencies{
		Backend:          backend,
		Wallet:           walletAdapter,
		Sessions:         storages.Sessions,
		IdentityMetadata: storages.IdentityMetadata,
		Logger:           log,
	}, engineOpts...)

	var refreshOpts []workers.RefreshOption
	if o.onRefresh != nil {
		refreshOpts = append(refreshOpts, workers.OnRefresh(o.onRefresh))
	}
	refresh := workers.NewRefreshWorker(engine, cfg.Workers.RefreshInterval, log, refreshOpts...)

	log.Info().
		Str("backend", cfg.Adapter.HTTPAddress).
		Bool("durable", cfg.Storage.DB.DSN != "").
		Bool("wallet", walletAdapter.Available()).
		Str("reconcile", cfg.Engine.Reconcile).
		Msg("client app created")

	return &App{
		Engine:   engine,
		Workers:  workers.NewWorkers(refresh),
		storages: storages,
		logger:   log,
	}, nil
}

// Restore rebuilds the previous session from local storage.
func (a *App) Restore(ctx context.Context) (*models.IdentityRecord, error) {
	return a.Engine.Restore(ctx)
}

// StartWorkers starts background refresh.
func (a *App) StartWorkers(ctx context.Context) {
	a.Workers.Start(ctx)
}

// Close stops the workers and releases local storage.
func (a *App) Close() error {
	a.Workers.Stop()
	return a.storages.Close()
}

// Logger returns the application logger.
func (a *App) Logger() *logger.Logger {
	return a.logger
}

func reconcilerFor(name string) service.Reconciler {
	if strings.EqualFold(strings.TrimSpace(name), config.ReconcileIncremental) {
		return service.IncrementalReconciler{}
	}
	return service.FullReloadReconciler{}
}
