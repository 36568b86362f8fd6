package serverfx

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/joeydtaylor/ncpbridge/pkg/bridge"
	"github.com/joeydtaylor/ncpbridge/pkg/electrician"
	"github.com/joeydtaylor/ncpbridge/pkg/feature"
	"github.com/joeydtaylor/ncpbridge/pkg/manifest"
	"github.com/joeydtaylor/ncpbridge/pkg/middleware/auth"
	"github.com/joeydtaylor/ncpbridge/pkg/middleware/logger"
	"github.com/joeydtaylor/ncpbridge/pkg/middleware/metrics"
	"github.com/joeydtaylor/ncpbridge/pkg/ncp"
	"github.com/joeydtaylor/ncpbridge/pkg/node/memnode"
	"github.com/joeydtaylor/ncpbridge/pkg/transport/httpx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ---------- Options ----------

type Config struct {
	ManifestEnv     string // NCP_MANIFEST
	DefaultManifest string // ncpbridge.toml
	RequestTimeout  time.Duration
}

type Option func(*Config)

func WithManifestEnv(k string) Option        { return func(c *Config) { c.ManifestEnv = k } }
func WithDefaultManifest(path string) Option { return func(c *Config) { c.DefaultManifest = path } }
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Config) { c.RequestTimeout = d }
}

func defaultConfig() Config {
	return Config{
		ManifestEnv:     "NCP_MANIFEST",
		DefaultManifest: "ncpbridge.toml",
		RequestTimeout:  10 * time.Second,
	}
}

// Module returns the complete bridge: manifest, dispatch registry, frame
// processor, middleware, router and the HTTP server lifecycle.
func Module(opts ...Option) fx.Option {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return fx.Options(
		fx.Provide(func() Config { return cfg }),
		fx.Provide(provideManifest),

		// Core middleware
		auth.Module,
		logger.Module,
		fx.Provide(fx.Annotate(metrics.ProvideMetrics, fx.ResultTags(`name:"metrics"`))),
		// Router impl
		fx.Provide(httpx.NewChi),

		// Dispatch
		fx.Provide(provideProfile),
		fx.Provide(provideStore),
		fx.Provide(func() *ncp.Stats { return &ncp.Stats{} }),
		fx.Provide(provideHandlers),
		fx.Provide(provideRegistry),
		fx.Provide(provideRelay),
		fx.Provide(provideProcessor),

		// Router
		fx.Provide(fx.Annotate(provideRouter, fx.ResultTags(`name:"app"`))),
		// Lifecycle
		fx.Invoke(registerHooks),
	)
}

func provideManifest(cfg Config) (manifest.Config, error) {
	return manifest.LoadConfigOptional(envOr(cfg.ManifestEnv, cfg.DefaultManifest))
}

func provideProfile(cfg manifest.Config) (feature.Profile, error) {
	ps, err := feature.LoadProfiles(cfg.NCP.ProfilesFile)
	if err != nil {
		return feature.Profile{}, err
	}
	return ps.Lookup(cfg.NCP.Profile)
}

func provideStore(cfg manifest.Config, zl *zap.Logger) (*memnode.Store, error) {
	seeds, err := cfg.Seeds()
	if err != nil {
		return nil, err
	}
	opts := []memnode.Option{
		memnode.WithLists(ncp.ListKeys()...),
		memnode.WithLogger(zl.Named("node")),
	}
	for k, v := range seeds {
		opts = append(opts, memnode.WithValue(k, v))
	}
	return memnode.New(opts...), nil
}

func provideHandlers(cfg manifest.Config, p feature.Profile, store *memnode.Store, stats *ncp.Stats, lvl zap.AtomicLevel) *ncp.Handlers {
	return ncp.NewHandlers(store, p.Set(), stats, lvl, cfg.NCP.Version, cfg.NCP.VendorID)
}

// provideRegistry panics on a malformed catalogue; that is a build defect,
// not a runtime condition.
func provideRegistry(p feature.Profile, h *ncp.Handlers, zl *zap.Logger) *ncp.Registry {
	reg := ncp.MustRegistry(p.Set(), h)
	sizes := reg.Sizes()
	zl.Info("dispatch tables built",
		zap.String("profile", p.Name),
		zap.Stringer("features", reg.Features()),
		zap.Ints("sizes", sizes[:]),
	)
	return reg
}

// provideRelay stops the relay pipeline after the HTTP server has drained.
func provideRelay(lc fx.Lifecycle) (electrician.RelayClient, error) {
	rc, err := electrician.NewRelayFromEnv()
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStop: func(context.Context) error { return rc.Close() }})
	return rc, nil
}

func provideProcessor(cfg manifest.Config, reg *ncp.Registry, stats *ncp.Stats, store *memnode.Store, rc electrician.RelayClient, zl *zap.Logger) *ncp.Processor {
	return ncp.NewProcessor(reg, stats,
		ncp.WithLogger(zl.Named("ncp")),
		ncp.WithRelay(rc, cfg.Relay.Topic),
		ncp.WithReset(store.Reset),
	)
}

// ---------- Router ----------

type routerDeps struct {
	fx.In
	Config    Config
	Profile   feature.Profile
	Processor *ncp.Processor
	Auth      *auth.Middleware
	LogMW     *logger.Middleware
	Metrics   http.Handler `name:"metrics"`
	Router    httpx.Router
	Logger    *zap.Logger
}

func provideRouter(d routerDeps) http.Handler {
	return bridge.BuildRouter(bridge.BuildDeps{
		Processor: d.Processor,
		Profile:   d.Profile,
		Auth:      d.Auth,
		LogMW:     d.LogMW,
		Metrics:   d.Metrics,
		Router:    d.Router,
		Logger:    d.Logger,
		Timeout:   d.Config.RequestTimeout,
	})
}

// ---------- Lifecycle ----------

type serverDeps struct {
	fx.In
	Manifest manifest.Config
	Logger   *zap.Logger
	App      http.Handler `name:"app"`
}

func registerHooks(lc fx.Lifecycle, d serverDeps) {
	addr := d.Manifest.Server.Listen
	cert := d.Manifest.Server.TLSCert
	key := d.Manifest.Server.TLSKey

	srv := &http.Server{
		Addr:         addr,
		Handler:      d.App,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		TLSConfig:    &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13},
	}
	useTLS := fileExists(cert) && fileExists(key)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			if useTLS {
				d.Logger.Info("server starting (TLS)", zap.String("addr", ln.Addr().String()), zap.String("cert", cert))
				go func() {
					if err := srv.ServeTLS(ln, cert, key); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
			} else {
				d.Logger.Info("server starting (PLAINTEXT)", zap.String("addr", ln.Addr().String()))
				srv.TLSConfig = nil
				go func() {
					if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping")
			return srv.Shutdown(ctx)
		},
	})
}

// ---- helpers ----

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
