package node

import (
	"testing"

	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsRoundTrip(t *testing.T) {
	items := [][]byte{{0x01}, {}, {0xaa, 0xbb, 0xcc}}
	enc := EncodeItems(items)
	assert.Equal(t, []byte{1, 0, 0x01, 0, 0, 3, 0, 0xaa, 0xbb, 0xcc}, enc)

	got, err := DecodeItems(enc)
	require.NoError(t, err)
	assert.Equal(t, items, got)

	got, err = DecodeItems(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeItemsTruncated(t *testing.T) {
	_, err := DecodeItems([]byte{0x01})
	assert.Equal(t, spinel.StatusParseError, spinel.StatusOf(err))

	_, err = DecodeItems([]byte{0x05, 0x00, 0x01})
	assert.Equal(t, spinel.StatusParseError, spinel.StatusOf(err))
}

func TestItemLengthLimit(t *testing.T) {
	require.NoError(t, CheckItem(make([]byte, MaxItemLen)))
	err := CheckItem(make([]byte, MaxItemLen+1))
	assert.Equal(t, spinel.StatusInvalidArgument, spinel.StatusOf(err))

	enc := EncodeItems([][]byte{make([]byte, MaxItemLen)})
	assert.Equal(t, []byte{0xff, 0xff}, enc[:2])
	got, err := DecodeItems(enc)
	require.NoError(t, err)
	assert.Len(t, got[0], MaxItemLen)

	assert.Panics(t, func() { EncodeItems([][]byte{make([]byte, MaxItemLen+1)}) })
}
