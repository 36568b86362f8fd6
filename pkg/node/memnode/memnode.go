// Package memnode is an in-memory node.Node.
package memnode

import (
	"bytes"
	"context"
	"slices"
	"sync"

	"github.com/joeydtaylor/ncpbridge/pkg/node"
	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
	"go.uber.org/zap"
)

// Store keeps scalar values and list values in memory.
type Store struct {
	mu     sync.RWMutex
	values map[spinel.PropKey][]byte
	lists  map[spinel.PropKey][][]byte

	listKeys map[spinel.PropKey]struct{}
	seed     map[spinel.PropKey][]byte
	log      *zap.Logger
}

var _ node.Node = (*Store)(nil)
var _ node.Resetter = (*Store)(nil)

type Option func(*Store)

// WithLists marks keys as list-valued.
func WithLists(keys ...spinel.PropKey) Option {
	return func(s *Store) {
		for _, k := range keys {
			s.listKeys[k] = struct{}{}
		}
	}
}

// WithValue seeds key. For list keys the value is an encoded item list.
func WithValue(key spinel.PropKey, v []byte) Option {
	return func(s *Store) { s.seed[key] = append([]byte(nil), v...) }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New builds a store. Seed values for list keys that fail to decode are
// logged and dropped.
func New(opts ...Option) *Store {
	s := &Store{
		listKeys: map[spinel.PropKey]struct{}{},
		seed:     map[spinel.PropKey][]byte{},
		log:      zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	s.load()
	return s
}

func (s *Store) load() {
	s.values = make(map[spinel.PropKey][]byte, len(s.seed))
	s.lists = make(map[spinel.PropKey][][]byte)
	for k, v := range s.seed {
		if !s.isList(k) {
			s.values[k] = append([]byte(nil), v...)
			continue
		}
		items, err := node.DecodeItems(v)
		if err != nil {
			s.log.Warn("dropping seed list", zap.Stringer("key", k), zap.Error(err))
			continue
		}
		s.lists[k] = items
	}
}

func (s *Store) isList(k spinel.PropKey) bool {
	_, ok := s.listKeys[k]
	return ok
}

func (s *Store) Get(_ context.Context, key spinel.PropKey) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.isList(key) {
		return node.EncodeItems(s.lists[key]), nil
	}
	return append([]byte{}, s.values[key]...), nil
}

func (s *Store) Set(_ context.Context, key spinel.PropKey, value []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isList(key) {
		items, err := node.DecodeItems(value)
		if err != nil {
			return nil, err
		}
		s.lists[key] = items
		return node.EncodeItems(items), nil
	}
	s.values[key] = append([]byte(nil), value...)
	return append([]byte{}, value...), nil
}

func (s *Store) Insert(_ context.Context, key spinel.PropKey, item []byte) error {
	if !s.isList(key) {
		return spinel.Errorf(spinel.StatusInvalidCommandForProp, "%s is not a list", key)
	}
	if err := node.CheckItem(item); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(key, item) >= 0 {
		return spinel.Errorf(spinel.StatusAlready, "%s already holds item", key)
	}
	s.lists[key] = append(s.lists[key], append([]byte(nil), item...))
	return nil
}

func (s *Store) Remove(_ context.Context, key spinel.PropKey, item []byte) error {
	if !s.isList(key) {
		return spinel.Errorf(spinel.StatusInvalidCommandForProp, "%s is not a list", key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(key, item)
	if i < 0 {
		return spinel.Errorf(spinel.StatusItemNotFound, "%s has no such item", key)
	}
	s.lists[key] = slices.Delete(s.lists[key], i, i+1)
	return nil
}

// Reset restores the seeded state.
func (s *Store) Reset(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return nil
}

func (s *Store) indexOf(key spinel.PropKey, item []byte) int {
	return slices.IndexFunc(s.lists[key], func(it []byte) bool { return bytes.Equal(it, item) })
}
