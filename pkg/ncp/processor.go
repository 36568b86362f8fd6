package ncp

import (
	"context"
	"fmt"
	"time"

	"github.com/joeydtaylor/ncpbridge/pkg/codec"
	"github.com/joeydtaylor/ncpbridge/pkg/dispatch"
	"github.com/joeydtaylor/ncpbridge/pkg/electrician"
	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
	"go.uber.org/zap"
)

// Change is published after a successful Set, Insert or Remove.
type Change struct {
	Key   string    `json:"key"`
	ID    uint32    `json:"id"`
	Verb  string    `json:"verb"`
	Value []byte    `json:"value"`
	TID   uint8     `json:"tid"`
	At    time.Time `json:"at"`
}

// Processor turns decoded frames into handler calls and builds the reply.
type Processor struct {
	reg   *Registry
	stats *Stats
	log   *zap.Logger
	relay electrician.RelayClient
	topic string
	reset func(context.Context) error
	now   func() time.Time
}

type Option func(*Processor)

func WithLogger(l *zap.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// WithRelay publishes Change events to topic through rc.
func WithRelay(rc electrician.RelayClient, topic string) Option {
	return func(p *Processor) { p.relay, p.topic = rc, topic }
}

// WithReset is invoked for the RESET command.
func WithReset(fn func(context.Context) error) Option {
	return func(p *Processor) { p.reset = fn }
}

func NewProcessor(reg *Registry, stats *Stats, opts ...Option) *Processor {
	p := &Processor{
		reg:   reg,
		stats: stats,
		log:   zap.NewNop(),
		relay: electrician.Noop(),
		now:   time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	for _, v := range dispatch.Verbs() {
		tableEntries.WithLabelValues(v.String()).Set(float64(len(reg.Table(v))))
	}
	return p
}

func (p *Processor) Registry() *Registry { return p.reg }

// Decode parses raw into a frame, counting malformed input.
func (p *Processor) Decode(raw []byte) (spinel.Frame, error) {
	var f spinel.Frame
	if err := f.UnmarshalBinary(raw); err != nil {
		p.stats.rxErr.Add(1)
		return spinel.Frame{}, fmt.Errorf("ncp: decode frame: %w", err)
	}
	return f, nil
}

// HandleFrame decodes raw, processes it and encodes the reply.
func (p *Processor) HandleFrame(ctx context.Context, raw []byte) ([]byte, error) {
	f, err := p.Decode(raw)
	if err != nil {
		return nil, err
	}
	return p.Process(ctx, f).MarshalBinary()
}

// Process runs one decoded frame. Misses, unsupported commands and handler
// failures all come back as LAST_STATUS replies.
func (p *Processor) Process(ctx context.Context, f spinel.Frame) spinel.Frame {
	p.stats.rxTotal.Add(1)
	resp, st := p.process(ctx, f)
	p.stats.txTotal.Add(1)
	framesProcessed.WithLabelValues(f.Command.String(), st.String()).Inc()
	return resp
}

func (p *Processor) process(ctx context.Context, f spinel.Frame) (spinel.Frame, spinel.Status) {
	switch f.Command {
	case spinel.CmdNoop:
		return p.status(f, spinel.StatusOK)
	case spinel.CmdReset:
		p.stats.Reset()
		if p.reset != nil {
			if err := p.reset(ctx); err != nil {
				p.log.Error("reset failed", zap.Error(err))
				return p.status(f, spinel.StatusOf(err))
			}
		}
		return p.status(f, spinel.StatusResetSoftware)
	}

	v, ok := verbOf(f.Command)
	if !ok {
		return p.status(f, spinel.StatusInvalidCommand)
	}

	h, ok := p.reg.Find(v, f.Key)
	if !ok {
		propertyLookups.WithLabelValues(v.String(), "miss").Inc()
		p.log.Debug("property not found",
			zap.Stringer("verb", v),
			zap.Stringer("key", f.Key),
			zap.Uint8("tid", f.Header.TID()),
		)
		return p.status(f, spinel.StatusPropNotFound)
	}
	propertyLookups.WithLabelValues(v.String(), "hit").Inc()

	start := time.Now()
	out, err := h(ctx, Request{Verb: v, Key: f.Key, Payload: f.Payload})
	handlerTime.WithLabelValues(v.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		st := spinel.StatusOf(err)
		p.log.Info("property handler failed",
			zap.Stringer("verb", v),
			zap.Stringer("key", f.Key),
			zap.Stringer("status", st),
			zap.Error(err),
		)
		return p.status(f, st)
	}

	if v != dispatch.Get {
		p.stats.setLastStatus(spinel.StatusOK)
		p.publish(ctx, v, f, out)
	}
	return f.Reply(replyOf(v), f.Key, out), spinel.StatusOK
}

func (p *Processor) status(f spinel.Frame, st spinel.Status) (spinel.Frame, spinel.Status) {
	p.stats.setLastStatus(st)
	return f.StatusFrame(st), st
}

func (p *Processor) publish(ctx context.Context, v dispatch.Verb, f spinel.Frame, value []byte) {
	if p.topic == "" {
		return
	}
	body, err := codec.JSONStrict.Marshal(Change{
		Key:   f.Key.String(),
		ID:    uint32(f.Key),
		Verb:  v.String(),
		Value: value,
		TID:   f.Header.TID(),
		At:    p.now().UTC(),
	})
	if err != nil {
		p.log.Error("encode change", zap.Error(err))
		return
	}
	err = p.relay.Publish(ctx, electrician.RelayRequest{
		Topic:   p.topic,
		Body:    body,
		Headers: map[string]string{"content-type": codec.JSONStrict.ContentType()},
	})
	if err != nil {
		p.log.Warn("publish change failed", zap.String("topic", p.topic), zap.Error(err))
	}
}

func verbOf(c spinel.Command) (dispatch.Verb, bool) {
	switch c {
	case spinel.CmdPropValueGet:
		return dispatch.Get, true
	case spinel.CmdPropValueSet:
		return dispatch.Set, true
	case spinel.CmdPropValueInsert:
		return dispatch.Insert, true
	case spinel.CmdPropValueRemove:
		return dispatch.Remove, true
	}
	return 0, false
}

func replyOf(v dispatch.Verb) spinel.Command {
	switch v {
	case dispatch.Insert:
		return spinel.CmdPropValueInserted
	case dispatch.Remove:
		return spinel.CmdPropValueRemoved
	}
	return spinel.CmdPropValueIs
}
