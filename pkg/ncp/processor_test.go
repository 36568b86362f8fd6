package ncp

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/joeydtaylor/ncpbridge/pkg/electrician"
	"github.com/joeydtaylor/ncpbridge/pkg/feature"
	"github.com/joeydtaylor/ncpbridge/pkg/node"
	"github.com/joeydtaylor/ncpbridge/pkg/node/memnode"
	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type recordingRelay struct {
	mu   sync.Mutex
	reqs []electrician.RelayRequest
	err  error
}

func (r *recordingRelay) Request(context.Context, electrician.RelayRequest) ([]byte, error) {
	return nil, errors.New("unsupported")
}

func (r *recordingRelay) Publish(_ context.Context, rr electrician.RelayRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, rr)
	return r.err
}

func (r *recordingRelay) Close() error { return nil }

type fixture struct {
	proc  *Processor
	store *memnode.Store
	stats *Stats
	level zap.AtomicLevel
	relay *recordingRelay
}

func newFixture(t *testing.T, set feature.Set) *fixture {
	t.Helper()
	store := memnode.New(
		memnode.WithLists(ListKeys()...),
		memnode.WithValue(spinel.PropPhyChan, []byte{11}),
	)
	stats := &Stats{}
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	h := NewHandlers(store, set, stats, level, "NCPBRIDGE/1.0", 0x1234)
	reg, err := NewRegistry(set, h)
	require.NoError(t, err)

	relay := &recordingRelay{}
	p := NewProcessor(reg, stats,
		WithRelay(relay, "ncp.changes"),
		WithReset(store.Reset),
		WithLogger(zap.NewNop()),
	)
	p.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return &fixture{proc: p, store: store, stats: stats, level: level, relay: relay}
}

func frame(cmd spinel.Command, key spinel.PropKey, payload ...byte) spinel.Frame {
	return spinel.Frame{Header: spinel.NewHeader(0, 5), Command: cmd, Key: key, Payload: payload}
}

func lastStatus(t *testing.T, f spinel.Frame) spinel.Status {
	t.Helper()
	require.Equal(t, spinel.CmdPropValueIs, f.Command)
	require.Equal(t, spinel.PropLastStatus, f.Key)
	v, _, err := spinel.ReadPackedUint(f.Payload)
	require.NoError(t, err)
	return spinel.Status(v)
}

var ftdSet = feature.Of(feature.FTD, feature.Commissioner, feature.MACFilter, feature.DynamicLogLevel)

func TestProcessGetHit(t *testing.T) {
	fx := newFixture(t, ftdSet)
	resp := fx.proc.Process(context.Background(), frame(spinel.CmdPropValueGet, spinel.PropPhyChan))
	assert.Equal(t, spinel.CmdPropValueIs, resp.Command)
	assert.Equal(t, spinel.PropPhyChan, resp.Key)
	assert.Equal(t, []byte{11}, resp.Payload)
	assert.Equal(t, uint8(5), resp.Header.TID())
	assert.Empty(t, fx.relay.reqs)
}

func TestProcessMissReportsPropNotFound(t *testing.T) {
	fx := newFixture(t, feature.Of(feature.MTD))
	before := testutil.ToFloat64(propertyLookups.WithLabelValues("set", "miss"))

	// leader weight exists only on FTD builds
	resp := fx.proc.Process(context.Background(), frame(spinel.CmdPropValueSet, spinel.PropThreadLocalLeaderWeight, 64))
	assert.Equal(t, spinel.StatusPropNotFound, lastStatus(t, resp))
	assert.Equal(t, uint8(5), resp.Header.TID())
	assert.Equal(t, before+1, testutil.ToFloat64(propertyLookups.WithLabelValues("set", "miss")))

	resp = fx.proc.Process(context.Background(), frame(spinel.CmdPropValueGet, spinel.PropKey(0x3fff)))
	assert.Equal(t, spinel.StatusPropNotFound, lastStatus(t, resp))

	resp = fx.proc.Process(context.Background(), frame(spinel.CmdPropValueGet, spinel.PropLastStatus))
	assert.Equal(t, spinel.StatusPropNotFound, lastStatus(t, resp))
}

func TestProcessRadioBuildMiss(t *testing.T) {
	fx := newFixture(t, feature.Of(feature.Radio))
	resp := fx.proc.Process(context.Background(), frame(spinel.CmdPropValueRemove, spinel.PropThreadActiveRouterIDs, 1))
	assert.Equal(t, spinel.StatusPropNotFound, lastStatus(t, resp))
}

func TestProcessInsertRemove(t *testing.T) {
	fx := newFixture(t, ftdSet)
	ctx := context.Background()
	item := []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}

	resp := fx.proc.Process(ctx, frame(spinel.CmdPropValueInsert, spinel.PropMACAllowlist, item...))
	assert.Equal(t, spinel.CmdPropValueInserted, resp.Command)
	assert.Equal(t, item, resp.Payload)

	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueInsert, spinel.PropMACAllowlist, item...))
	assert.Equal(t, spinel.StatusAlready, lastStatus(t, resp))

	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueGet, spinel.PropLastStatus))
	assert.Equal(t, spinel.StatusAlready, lastStatus(t, resp))

	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueGet, spinel.PropMACAllowlist))
	assert.Equal(t, node.EncodeItems([][]byte{item}), resp.Payload)

	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueRemove, spinel.PropMACAllowlist, item...))
	assert.Equal(t, spinel.CmdPropValueRemoved, resp.Command)

	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueRemove, spinel.PropMACAllowlist, item...))
	assert.Equal(t, spinel.StatusItemNotFound, lastStatus(t, resp))

	require.Len(t, fx.relay.reqs, 2)
	var ch Change
	require.NoError(t, json.Unmarshal(fx.relay.reqs[0].Body, &ch))
	assert.Equal(t, "MAC_ALLOWLIST", ch.Key)
	assert.Equal(t, uint32(spinel.PropMACAllowlist), ch.ID)
	assert.Equal(t, "insert", ch.Verb)
	assert.Equal(t, item, ch.Value)
	assert.Equal(t, uint8(5), ch.TID)
	assert.Equal(t, "ncp.changes", fx.relay.reqs[0].Topic)
	assert.Equal(t, "application/json", fx.relay.reqs[0].Headers["content-type"])
}

func TestProcessAsymmetricVerbs(t *testing.T) {
	fx := newFixture(t, ftdSet)
	ctx := context.Background()

	resp := fx.proc.Process(ctx, frame(spinel.CmdPropValueInsert, spinel.PropThreadJoiners, 0x01))
	assert.Equal(t, spinel.CmdPropValueInserted, resp.Command)
	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueRemove, spinel.PropThreadJoiners, 0x01))
	assert.Equal(t, spinel.StatusPropNotFound, lastStatus(t, resp))

	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueInsert, spinel.PropThreadActiveRouterIDs, 0x02))
	assert.Equal(t, spinel.StatusPropNotFound, lastStatus(t, resp))
	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueRemove, spinel.PropThreadActiveRouterIDs, 0x02))
	assert.Equal(t, spinel.StatusItemNotFound, lastStatus(t, resp))
}

func TestProcessSetPublishes(t *testing.T) {
	fx := newFixture(t, ftdSet)
	fx.relay.err = errors.New("relay down")

	resp := fx.proc.Process(context.Background(), frame(spinel.CmdPropValueSet, spinel.PropNetNetworkName, 'l', 'a', 'b'))
	assert.Equal(t, spinel.CmdPropValueIs, resp.Command)
	assert.Equal(t, []byte("lab"), resp.Payload)
	require.Len(t, fx.relay.reqs, 1)

	v, err := fx.store.Get(context.Background(), spinel.PropNetNetworkName)
	require.NoError(t, err)
	assert.Equal(t, []byte("lab"), v)
}

func TestProcessNoTopicSkipsPublish(t *testing.T) {
	fx := newFixture(t, ftdSet)
	fx.proc.topic = ""
	fx.proc.Process(context.Background(), frame(spinel.CmdPropValueSet, spinel.PropNetNetworkName, 'x'))
	assert.Empty(t, fx.relay.reqs)
}

func TestProcessCommands(t *testing.T) {
	fx := newFixture(t, ftdSet)
	ctx := context.Background()

	resp := fx.proc.Process(ctx, frame(spinel.CmdNoop, 0))
	assert.Equal(t, spinel.StatusOK, lastStatus(t, resp))

	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueIs, spinel.PropPhyChan, 1))
	assert.Equal(t, spinel.StatusInvalidCommand, lastStatus(t, resp))

	resp = fx.proc.Process(ctx, frame(spinel.Command(99), 0))
	assert.Equal(t, spinel.StatusInvalidCommand, lastStatus(t, resp))

	_, err := fx.store.Set(ctx, spinel.PropPhyChan, []byte{26})
	require.NoError(t, err)
	resp = fx.proc.Process(ctx, frame(spinel.CmdReset, 0))
	assert.Equal(t, spinel.StatusResetSoftware, lastStatus(t, resp))
	v, _ := fx.store.Get(ctx, spinel.PropPhyChan)
	assert.Equal(t, []byte{11}, v)
}

func TestProcessResetFailure(t *testing.T) {
	fx := newFixture(t, ftdSet)
	WithReset(func(context.Context) error {
		return spinel.Errorf(spinel.StatusBusy, "radio busy")
	})(fx.proc)
	resp := fx.proc.Process(context.Background(), frame(spinel.CmdReset, 0))
	assert.Equal(t, spinel.StatusBusy, lastStatus(t, resp))
}

func TestHandleFrame(t *testing.T) {
	fx := newFixture(t, ftdSet)
	ctx := context.Background()

	raw, err := frame(spinel.CmdPropValueGet, spinel.PropPhyChan).MarshalBinary()
	require.NoError(t, err)
	out, err := fx.proc.HandleFrame(ctx, raw)
	require.NoError(t, err)

	var resp spinel.Frame
	require.NoError(t, resp.UnmarshalBinary(out))
	assert.Equal(t, []byte{11}, resp.Payload)

	_, err = fx.proc.HandleFrame(ctx, []byte{0x00})
	assert.Error(t, err)
	assert.Equal(t, uint32(1), fx.stats.RxErr())
	assert.Equal(t, uint32(1), fx.stats.RxTotal())
	assert.Equal(t, uint32(1), fx.stats.TxTotal())
}

func TestLocalHandlers(t *testing.T) {
	fx := newFixture(t, ftdSet)
	ctx := context.Background()
	get := func(k spinel.PropKey) []byte {
		resp := fx.proc.Process(ctx, frame(spinel.CmdPropValueGet, k))
		require.Equal(t, k, resp.Key)
		return resp.Payload
	}

	assert.Equal(t, []byte{4, 3}, get(spinel.PropProtocolVersion))
	assert.Equal(t, append([]byte("NCPBRIDGE/1.0"), 0), get(spinel.PropNCPVersion))
	assert.Equal(t, []byte{3}, get(spinel.PropInterfaceType))
	assert.Equal(t, []byte{0xb4, 0x24}, get(spinel.PropVendorID))
	assert.Equal(t, []byte{1}, get(spinel.PropInterfaceCount))

	caps := get(spinel.PropCaps)
	var decoded []spinel.Capability
	for len(caps) > 0 {
		v, n, err := spinel.ReadPackedUint(caps)
		require.NoError(t, err)
		decoded = append(decoded, spinel.Capability(v))
		caps = caps[n:]
	}
	assert.Equal(t, Capabilities(ftdSet), decoded)

	tx := binary.LittleEndian.Uint32(get(spinel.PropCntrTxSpinelTotal))
	assert.Equal(t, fx.stats.TxTotal()-1, tx)
	rx := binary.LittleEndian.Uint32(get(spinel.PropCntrRxSpinelTotal))
	assert.Equal(t, fx.stats.RxTotal(), rx)
}

func TestCounterReset(t *testing.T) {
	fx := newFixture(t, ftdSet)
	ctx := context.Background()
	fx.proc.Process(ctx, frame(spinel.CmdPropValueGet, spinel.PropPhyChan))

	resp := fx.proc.Process(ctx, frame(spinel.CmdPropValueSet, spinel.PropCntrReset, 1))
	assert.Equal(t, spinel.CmdPropValueIs, resp.Command)
	assert.Equal(t, uint32(0), fx.stats.RxTotal())
	assert.Equal(t, uint32(1), fx.stats.TxTotal())

	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueSet, spinel.PropCntrReset, 2))
	assert.Equal(t, spinel.StatusInvalidArgument, lastStatus(t, resp))
}

func TestLogLevelProperty(t *testing.T) {
	fx := newFixture(t, ftdSet)
	ctx := context.Background()

	resp := fx.proc.Process(ctx, frame(spinel.CmdPropValueGet, spinel.PropDebugNCPLogLevel))
	assert.Equal(t, []byte{4}, resp.Payload)

	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueSet, spinel.PropDebugNCPLogLevel, 5))
	assert.Equal(t, []byte{5}, resp.Payload)
	assert.Equal(t, zapcore.DebugLevel, fx.level.Level())

	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueSet, spinel.PropDebugNCPLogLevel, 2))
	assert.Equal(t, []byte{2}, resp.Payload)
	assert.Equal(t, zapcore.WarnLevel, fx.level.Level())

	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueSet, spinel.PropDebugNCPLogLevel, 9))
	assert.Equal(t, spinel.StatusInvalidArgument, lastStatus(t, resp))

	resp = fx.proc.Process(ctx, frame(spinel.CmdPropValueSet, spinel.PropDebugNCPLogLevel))
	assert.Equal(t, spinel.StatusParseError, lastStatus(t, resp))
}

func TestLogLevelNotSettableWithoutFlag(t *testing.T) {
	fx := newFixture(t, feature.Of(feature.FTD))
	resp := fx.proc.Process(context.Background(), frame(spinel.CmdPropValueSet, spinel.PropDebugNCPLogLevel, 5))
	assert.Equal(t, spinel.StatusPropNotFound, lastStatus(t, resp))
	assert.Equal(t, zapcore.InfoLevel, fx.level.Level())
}
