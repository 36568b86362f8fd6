package electrician

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// RelayRequest is the byte-level publish envelope.
type RelayRequest struct {
	Topic   string
	Body    []byte
	Headers map[string]string
	Timeout time.Duration
}

// RelayClient publishes property-change events off the bridge.
type RelayClient interface {
	Request(ctx context.Context, rr RelayRequest) ([]byte, error)
	Publish(ctx context.Context, rr RelayRequest) error
	// Close stops the pipeline. Publishes after Close fail.
	Close() error
}

// Noop accepts publishes and discards them; Request is unsupported.
func Noop() RelayClient { return noopRelay{} }

type noopRelay struct{}

func (noopRelay) Request(context.Context, RelayRequest) ([]byte, error) {
	return nil, fmt.Errorf("electrician(noop): request/reply unsupported")
}
func (noopRelay) Publish(context.Context, RelayRequest) error { return nil }
func (noopRelay) Close() error                                { return nil }

var errClosed = errors.New("electrician: relay closed")

type builderClient struct {
	once   sync.Once
	start  error
	submit func(context.Context, []byte) error
	stop   context.CancelFunc
	closed atomic.Bool
}

// Request is unsupported in builder mode (stream/publish only).
func (c *builderClient) Request(context.Context, RelayRequest) ([]byte, error) {
	return nil, fmt.Errorf("electrician(builder): request/reply unsupported")
}

// Publish sends bytes into the pipeline. Topic/headers ride the relay path.
func (c *builderClient) Publish(ctx context.Context, rr RelayRequest) error {
	if rr.Topic == "" {
		return fmt.Errorf("relay: missing topic")
	}
	if c.start != nil {
		return c.start
	}
	if c.closed.Load() {
		return errClosed
	}
	if rr.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rr.Timeout)
		defer cancel()
	}
	return c.submit(ctx, rr.Body)
}

// Close cancels the context the wire and relay run on. It is idempotent.
func (c *builderClient) Close() error {
	if c.closed.CompareAndSwap(false, true) && c.stop != nil {
		c.stop()
	}
	return nil
}
