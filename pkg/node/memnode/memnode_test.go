package memnode

import (
	"context"
	"testing"

	"github.com/joeydtaylor/ncpbridge/pkg/node"
	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarValues(t *testing.T) {
	ctx := context.Background()
	s := New(WithValue(spinel.PropPhyChan, []byte{11}))

	v, err := s.Get(ctx, spinel.PropPhyChan)
	require.NoError(t, err)
	assert.Equal(t, []byte{11}, v)

	v, err = s.Set(ctx, spinel.PropPhyChan, []byte{15})
	require.NoError(t, err)
	assert.Equal(t, []byte{15}, v)

	v, err = s.Get(ctx, spinel.PropNetNetworkName)
	require.NoError(t, err)
	assert.Empty(t, v)

	err = s.Insert(ctx, spinel.PropPhyChan, []byte{1})
	assert.Equal(t, spinel.StatusInvalidCommandForProp, spinel.StatusOf(err))
}

func TestListValues(t *testing.T) {
	ctx := context.Background()
	key := spinel.PropMACAllowlist
	s := New(WithLists(key))

	require.NoError(t, s.Insert(ctx, key, []byte{0xaa}))
	require.NoError(t, s.Insert(ctx, key, []byte{0xbb}))

	err := s.Insert(ctx, key, []byte{0xaa})
	assert.Equal(t, spinel.StatusAlready, spinel.StatusOf(err))

	v, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, node.EncodeItems([][]byte{{0xaa}, {0xbb}}), v)

	require.NoError(t, s.Remove(ctx, key, []byte{0xaa}))
	err = s.Remove(ctx, key, []byte{0xaa})
	assert.Equal(t, spinel.StatusItemNotFound, spinel.StatusOf(err))

	v, err = s.Set(ctx, key, node.EncodeItems([][]byte{{1}, {2}, {3}}))
	require.NoError(t, err)
	items, err := node.DecodeItems(v)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	_, err = s.Set(ctx, key, []byte{0x09})
	assert.Equal(t, spinel.StatusParseError, spinel.StatusOf(err))
}

func TestResetRestoresSeed(t *testing.T) {
	ctx := context.Background()
	key := spinel.PropMACAllowlist
	s := New(
		WithLists(key),
		WithValue(key, node.EncodeItems([][]byte{{0x01}})),
		WithValue(spinel.PropPhyChan, []byte{11}),
		WithValue(spinel.PropMACDenylist, []byte{0xff}),
	)

	_, err := s.Set(ctx, spinel.PropPhyChan, []byte{20})
	require.NoError(t, err)
	require.NoError(t, s.Insert(ctx, key, []byte{0x02}))

	require.NoError(t, s.Reset(ctx))
	v, _ := s.Get(ctx, spinel.PropPhyChan)
	assert.Equal(t, []byte{11}, v)
	v, _ = s.Get(ctx, key)
	assert.Equal(t, node.EncodeItems([][]byte{{0x01}}), v)
}

func TestBadListSeedDropped(t *testing.T) {
	key := spinel.PropMACAllowlist
	s := New(WithLists(key), WithValue(key, []byte{0x07}))
	v, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestInsertOversizeItem(t *testing.T) {
	ctx := context.Background()
	key := spinel.PropMACAllowlist
	s := New(WithLists(key))

	err := s.Insert(ctx, key, make([]byte, node.MaxItemLen+1))
	assert.Equal(t, spinel.StatusInvalidArgument, spinel.StatusOf(err))

	v, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, v)
}
