package spinel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackedUint(t *testing.T) {
	cases := []struct {
		v    uint32
		want []byte
	}{
		{0, []byte{0x00}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{0x1505, []byte{0x85, 0x2a}},
		{MaxPackedUint, []byte{0xff, 0xff, 0x7f}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%#x", tc.v), func(t *testing.T) {
			got, err := AppendPackedUint(nil, tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			v, n, err := ReadPackedUint(append(got, 0xaa))
			require.NoError(t, err)
			assert.Equal(t, tc.v, v)
			assert.Equal(t, len(tc.want), n)
		})
	}
}

func TestPackedUintErrors(t *testing.T) {
	_, err := AppendPackedUint(nil, MaxPackedUint+1)
	assert.Error(t, err)

	_, _, err = ReadPackedUint([]byte{0x80})
	assert.ErrorIs(t, err, ErrShortBuffer)

	_, _, err = ReadPackedUint([]byte{0x80, 0x80, 0x80, 0x01})
	assert.Error(t, err)
}

func TestFrameRoundTrip(t *testing.T) {
	in := Frame{
		Header:  NewHeader(0, 3),
		Command: CmdPropValueSet,
		Key:     PropThreadActiveRouterIDs,
		Payload: []byte{0x01, 0x02},
	}
	raw, err := in.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x83, 0x03, 0x85, 0x2a, 0x01, 0x02}, raw)

	var out Frame
	require.NoError(t, out.UnmarshalBinary(raw))
	assert.Equal(t, in, out)
	assert.Equal(t, uint8(3), out.Header.TID())
	assert.Equal(t, uint8(0), out.Header.IID())
}

func TestFrameNonPropCommand(t *testing.T) {
	var f Frame
	require.NoError(t, f.UnmarshalBinary([]byte{0x81, 0x01, 0x00}))
	assert.Equal(t, CmdReset, f.Command)
	assert.Equal(t, PropKey(0), f.Key)
	assert.Equal(t, []byte{0x00}, f.Payload)
}

func TestFrameDecodeErrors(t *testing.T) {
	var f Frame
	assert.ErrorIs(t, f.UnmarshalBinary(nil), ErrShortBuffer)
	assert.Error(t, f.UnmarshalBinary([]byte{0x03, 0x02, 0x00}))
	assert.Error(t, f.UnmarshalBinary([]byte{0x81, 0x02}))
}

func TestStatusFrame(t *testing.T) {
	req := Frame{Header: NewHeader(1, 9), Command: CmdPropValueGet, Key: PropPhyChan}
	st := req.StatusFrame(StatusPropNotFound)
	assert.Equal(t, req.Header, st.Header)
	assert.Equal(t, CmdPropValueIs, st.Command)
	assert.Equal(t, PropLastStatus, st.Key)
	assert.Equal(t, []byte{13}, st.Payload)
}

func TestParsePropKey(t *testing.T) {
	cases := map[string]PropKey{
		"PHY_CHAN":                 PropPhyChan,
		"prop_phy_chan":            PropPhyChan,
		"THREAD_ACTIVE_ROUTER_IDS": PropThreadActiveRouterIDs,
		"0x1008":                   PropUnsolUpdateFilter,
		"33":                       PropPhyChan,
	}
	for in, want := range cases {
		got, err := ParsePropKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePropKey("NOT_A_PROPERTY")
	assert.Error(t, err)
	_, err = ParsePropKey("")
	assert.Error(t, err)
}

func TestPropKeyString(t *testing.T) {
	assert.Equal(t, "PHY_CHAN", PropPhyChan.String())
	assert.Equal(t, "PROP_0x7777", PropKey(0x7777).String())
	assert.True(t, PropLastStatus.Known())
	assert.False(t, PropKey(0x7777).Known())
}

func TestPropKeysAscending(t *testing.T) {
	keys := PropKeys()
	require.NotEmpty(t, keys)
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusOK, StatusOf(nil))
	assert.Equal(t, StatusFailure, StatusOf(errors.New("boom")))
	wrapped := fmt.Errorf("ctx: %w", Errorf(StatusAlready, "key %d", 1))
	assert.Equal(t, StatusAlready, StatusOf(wrapped))
	assert.Equal(t, "spinel: ALREADY: key 1", Errorf(StatusAlready, "key %d", 1).Error())
}
