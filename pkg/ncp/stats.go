package ncp

import (
	"sync/atomic"

	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
)

// Stats holds the frame counters exposed through the spinel counter
// properties and the last status reported to the host.
type Stats struct {
	txTotal    atomic.Uint32
	rxTotal    atomic.Uint32
	rxErr      atomic.Uint32
	lastStatus atomic.Uint32
}

func (s *Stats) TxTotal() uint32 { return s.txTotal.Load() }
func (s *Stats) RxTotal() uint32 { return s.rxTotal.Load() }
func (s *Stats) RxErr() uint32   { return s.rxErr.Load() }

func (s *Stats) LastStatus() spinel.Status { return spinel.Status(s.lastStatus.Load()) }

func (s *Stats) setLastStatus(st spinel.Status) { s.lastStatus.Store(uint32(st)) }

// Reset zeroes the frame counters. The last status is kept.
func (s *Stats) Reset() {
	s.txTotal.Store(0)
	s.rxTotal.Store(0)
	s.rxErr.Store(0)
}
