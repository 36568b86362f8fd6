package ncp

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/joeydtaylor/ncpbridge/pkg/dispatch"
	"github.com/joeydtaylor/ncpbridge/pkg/feature"
	"github.com/joeydtaylor/ncpbridge/pkg/node"
	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Request is what a handler receives for one dispatched property command.
type Request struct {
	Verb    dispatch.Verb
	Key     spinel.PropKey
	Payload []byte
}

// Handler implements one (verb, property) pair. For Get and Set the
// returned bytes are the property value; for Insert and Remove they are the
// item that was added or removed.
type Handler func(ctx context.Context, req Request) ([]byte, error)

// Handlers binds catalogue entries to implementations: a few properties are
// answered by the bridge itself, the rest go to the node.
type Handlers struct {
	Node     node.Node
	Features feature.Set
	Stats    *Stats
	Level    zap.AtomicLevel
	Version  string
	VendorID uint32

	local map[dispatch.Verb]map[spinel.PropKey]Handler
}

// NewHandlers prepares the bridge-local handler set.
func NewHandlers(n node.Node, set feature.Set, stats *Stats, level zap.AtomicLevel, version string, vendorID uint32) *Handlers {
	h := &Handlers{
		Node:     n,
		Features: set,
		Stats:    stats,
		Level:    level,
		Version:  version,
		VendorID: vendorID,
	}
	h.local = map[dispatch.Verb]map[spinel.PropKey]Handler{
		dispatch.Get: {
			spinel.PropLastStatus:        h.getLastStatus,
			spinel.PropProtocolVersion:   h.getProtocolVersion,
			spinel.PropNCPVersion:        h.getNCPVersion,
			spinel.PropInterfaceType:     packedConst(spinel.InterfaceTypeThread),
			spinel.PropVendorID:          h.getVendorID,
			spinel.PropCaps:              h.getCaps,
			spinel.PropInterfaceCount:    packedConst(1),
			spinel.PropCntrTxSpinelTotal: counter(stats.TxTotal),
			spinel.PropCntrRxSpinelTotal: counter(stats.RxTotal),
			spinel.PropCntrRxSpinelErr:   counter(stats.RxErr),
			spinel.PropDebugNCPLogLevel:  h.getLogLevel,
		},
		dispatch.Set: {
			spinel.PropCntrReset:        h.setCntrReset,
			spinel.PropDebugNCPLogLevel: h.setLogLevel,
		},
	}
	return h
}

// Bind satisfies dispatch.Binder.
func (h *Handlers) Bind(v dispatch.Verb, key spinel.PropKey) (Handler, bool) {
	if fn, ok := h.local[v][key]; ok {
		return fn, true
	}
	if h.Node == nil {
		return nil, false
	}
	switch v {
	case dispatch.Get:
		return h.nodeGet, true
	case dispatch.Set:
		return h.nodeSet, true
	case dispatch.Insert:
		return h.nodeInsert, true
	case dispatch.Remove:
		return h.nodeRemove, true
	}
	return nil, false
}

func (h *Handlers) nodeGet(ctx context.Context, req Request) ([]byte, error) {
	return h.Node.Get(ctx, req.Key)
}

func (h *Handlers) nodeSet(ctx context.Context, req Request) ([]byte, error) {
	return h.Node.Set(ctx, req.Key, req.Payload)
}

func (h *Handlers) nodeInsert(ctx context.Context, req Request) ([]byte, error) {
	if err := h.Node.Insert(ctx, req.Key, req.Payload); err != nil {
		return nil, err
	}
	return req.Payload, nil
}

func (h *Handlers) nodeRemove(ctx context.Context, req Request) ([]byte, error) {
	if err := h.Node.Remove(ctx, req.Key, req.Payload); err != nil {
		return nil, err
	}
	return req.Payload, nil
}

func (h *Handlers) getLastStatus(context.Context, Request) ([]byte, error) {
	return spinel.AppendPackedUint(nil, uint32(h.Stats.LastStatus()))
}

func (h *Handlers) getProtocolVersion(context.Context, Request) ([]byte, error) {
	out, err := spinel.AppendPackedUint(nil, spinel.ProtocolVersionMajor)
	if err != nil {
		return nil, err
	}
	return spinel.AppendPackedUint(out, spinel.ProtocolVersionMinor)
}

func (h *Handlers) getNCPVersion(context.Context, Request) ([]byte, error) {
	return append([]byte(h.Version), 0), nil
}

func (h *Handlers) getVendorID(context.Context, Request) ([]byte, error) {
	return spinel.AppendPackedUint(nil, h.VendorID)
}

func (h *Handlers) getCaps(context.Context, Request) ([]byte, error) {
	var out []byte
	for _, c := range Capabilities(h.Features) {
		var err error
		if out, err = spinel.AppendPackedUint(out, uint32(c)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (h *Handlers) setCntrReset(ctx context.Context, req Request) ([]byte, error) {
	if len(req.Payload) != 1 || req.Payload[0] != 1 {
		return nil, spinel.Errorf(spinel.StatusInvalidArgument, "counter reset expects 0x01")
	}
	h.Stats.Reset()
	if h.Node != nil {
		if _, err := h.Node.Set(ctx, req.Key, req.Payload); err != nil {
			return nil, err
		}
	}
	return req.Payload, nil
}

// Log levels as carried by DEBUG_NCP_LOG_LEVEL.
const (
	logLevelNone = 0
	logLevelCrit = 1
	logLevelWarn = 2
	logLevelNote = 3
	logLevelInfo = 4
	logLevelDebg = 5
)

func (h *Handlers) getLogLevel(context.Context, Request) ([]byte, error) {
	switch h.Level.Level() {
	case zapcore.DebugLevel:
		return []byte{logLevelDebg}, nil
	case zapcore.InfoLevel:
		return []byte{logLevelInfo}, nil
	case zapcore.WarnLevel:
		return []byte{logLevelWarn}, nil
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel:
		return []byte{logLevelCrit}, nil
	default:
		return []byte{logLevelNone}, nil
	}
}

func (h *Handlers) setLogLevel(ctx context.Context, req Request) ([]byte, error) {
	if len(req.Payload) != 1 {
		return nil, spinel.Errorf(spinel.StatusParseError, "log level is one byte")
	}
	switch req.Payload[0] {
	case logLevelNone:
		h.Level.SetLevel(zapcore.FatalLevel)
	case logLevelCrit:
		h.Level.SetLevel(zapcore.ErrorLevel)
	case logLevelWarn:
		h.Level.SetLevel(zapcore.WarnLevel)
	case logLevelNote, logLevelInfo:
		h.Level.SetLevel(zapcore.InfoLevel)
	case logLevelDebg:
		h.Level.SetLevel(zapcore.DebugLevel)
	default:
		return nil, spinel.Errorf(spinel.StatusInvalidArgument, "log level %d", req.Payload[0])
	}
	return h.getLogLevel(ctx, req)
}

func packedConst(v uint32) Handler {
	return func(context.Context, Request) ([]byte, error) {
		return spinel.AppendPackedUint(nil, v)
	}
}

func counter(read func() uint32) Handler {
	return func(context.Context, Request) ([]byte, error) {
		return binary.LittleEndian.AppendUint32(nil, read()), nil
	}
}

// ListKeys returns the keys the catalogue declares with Insert or Remove,
// which are list-valued.
func ListKeys() []spinel.PropKey {
	var out []spinel.PropKey
	for _, d := range Catalogue {
		if d.Insert != nil || d.Remove != nil {
			out = append(out, d.Key)
		}
	}
	return out
}

// Registry is the dispatch registry specialised to spinel properties.
type Registry = dispatch.Registry[spinel.PropKey, Handler]

// NewRegistry builds the four verb tables for set from the catalogue.
func NewRegistry(set feature.Set, h *Handlers) (*Registry, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}
	r, err := dispatch.NewRegistry[spinel.PropKey, Handler](Catalogue, set, h.Bind)
	if err != nil {
		return nil, fmt.Errorf("ncp: %w", err)
	}
	return r, nil
}

// MustRegistry panics if the catalogue cannot produce valid tables.
func MustRegistry(set feature.Set, h *Handlers) *Registry {
	r, err := NewRegistry(set, h)
	if err != nil {
		panic(err)
	}
	return r
}
