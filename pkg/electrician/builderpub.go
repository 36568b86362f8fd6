package electrician

// Publish-only RelayClient implemented with Electrician builder primitives.
// No builder.* types are stored on the struct.

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/joeydtaylor/electrician/pkg/builder"
)

// NewRelayFromEnv loads RelayConfig from the environment and builds the
// client. Without ELECTRICIAN_TARGET it returns the noop client.
func NewRelayFromEnv() (RelayClient, error) {
	cfg, err := LoadRelayConfig()
	if err != nil {
		return nil, err
	}
	return NewBuilderRelay(cfg)
}

// NewBuilderRelay returns a publish-capable RelayClient powered by
// Electrician's ForwardRelay[[]byte].
func NewBuilderRelay(cfg RelayConfig) (RelayClient, error) {
	if !cfg.Enabled() {
		return noopRelay{}, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	aesKey, err := cfg.aesKey()
	if err != nil {
		return nil, err
	}

	logger := builder.NewLogger(builder.LoggerWithDevelopment(true))

	ctx, cancel := context.WithCancel(context.Background())
	wire := builder.NewWire[[]byte](ctx, builder.WireWithLogger[[]byte](logger))

	perf := builder.NewPerformanceOptions(cfg.useSnappy(), builder.COMPRESS_SNAPPY)
	sec := builder.NewSecurityOptions(cfg.useAESGCM(), builder.ENCRYPTION_AES_GCM)
	tlsCfg := builder.NewTlsClientConfig(
		cfg.TLSEnable,
		cfg.TLSCert, cfg.TLSKey, cfg.TLSCA,
		tls.VersionTLS13, tls.VersionTLS13,
	)

	var relayStart func(context.Context) error

	if cfg.oauthEnabled() {
		var authOpts = builder.NewForwardRelayAuthenticationOptionsOAuth2(nil)
		if cfg.OAuthJWKSURL != "" {
			authOpts = builder.NewForwardRelayAuthenticationOptionsOAuth2(
				builder.NewForwardRelayOAuth2JWTOptions(cfg.OAuthIssuer, cfg.OAuthJWKSURL, []string{}, cfg.OAuthScopes, 300),
			)
		}

		authHTTP := &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					MinVersion:         tls.VersionTLS13,
					MaxVersion:         tls.VersionTLS13,
					InsecureSkipVerify: cfg.TLSInsecure, // dev only
				},
			},
		}
		if cfg.OAuthPreflight > 0 {
			if err := preflightToken(ctx, authHTTP, cfg, cfg.OAuthPreflight); err != nil {
				cancel()
				return nil, err
			}
		}

		ts := builder.NewForwardRelayRefreshingClientCredentialsSource(
			cfg.OAuthIssuer, cfg.OAuthClientID, cfg.OAuthClientSecret, cfg.OAuthScopes, cfg.OAuthLeeway, authHTTP,
		)

		relay := builder.NewForwardRelay[[]byte](
			ctx,
			builder.ForwardRelayWithLogger[[]byte](logger),
			builder.ForwardRelayWithTarget[[]byte](cfg.Targets...),
			builder.ForwardRelayWithPerformanceOptions[[]byte](perf),
			builder.ForwardRelayWithSecurityOptions[[]byte](sec, aesKey),
			builder.ForwardRelayWithTLSConfig[[]byte](tlsCfg),
			builder.ForwardRelayWithStaticHeaders[[]byte](cfg.StaticHeaders),
			builder.ForwardRelayWithAuthenticationOptions[[]byte](authOpts),
			builder.ForwardRelayWithOAuthBearer[[]byte](ts),
			builder.ForwardRelayWithInput(wire),
		)
		relayStart = relay.Start
	} else {
		relay := builder.NewForwardRelay[[]byte](
			ctx,
			builder.ForwardRelayWithLogger[[]byte](logger),
			builder.ForwardRelayWithTarget[[]byte](cfg.Targets...),
			builder.ForwardRelayWithPerformanceOptions[[]byte](perf),
			builder.ForwardRelayWithSecurityOptions[[]byte](sec, aesKey),
			builder.ForwardRelayWithTLSConfig[[]byte](tlsCfg),
			builder.ForwardRelayWithStaticHeaders[[]byte](cfg.StaticHeaders),
			builder.ForwardRelayWithInput(wire),
		)
		relayStart = relay.Start
	}

	c := &builderClient{
		submit: func(ctx context.Context, b []byte) error { return wire.Submit(ctx, b) },
		stop:   cancel,
	}
	c.once.Do(func() {
		if err := wire.Start(ctx); err != nil {
			c.start = fmt.Errorf("builder wire start: %w", err)
			return
		}
		if err := relayStart(ctx); err != nil {
			c.start = fmt.Errorf("builder relay start: %w", err)
			return
		}
	})
	if c.start != nil {
		cancel()
		return nil, c.start
	}
	return c, nil
}
