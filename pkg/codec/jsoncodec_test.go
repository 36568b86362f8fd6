package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStrict(t *testing.T) {
	type body struct {
		Value string `json:"value"`
	}

	b, err := JSONStrict.Marshal(body{Value: "<0b>"})
	require.NoError(t, err)
	assert.Equal(t, `{"value":"<0b>"}`, string(b))
	assert.Equal(t, "application/json", JSONStrict.ContentType())

	var got body
	require.NoError(t, JSONStrict.Unmarshal([]byte(`{"value":"0b"}`), &got))
	assert.Equal(t, "0b", got.Value)

	assert.Error(t, JSONStrict.Unmarshal([]byte(`{"value":"0b","extra":1}`), &got))
	assert.Error(t, JSONStrict.Unmarshal([]byte(`{"value":"0b"} {}`), &got))
	assert.Error(t, JSONStrict.Unmarshal([]byte(`{`), &got))
}

type wire struct{ b []byte }

func (w wire) MarshalBinary() ([]byte, error)     { return append([]byte{0x80}, w.b...), nil }
func (w *wire) UnmarshalBinary(data []byte) error { w.b = data[1:]; return nil }

func TestOctetStream(t *testing.T) {
	b, err := OctetStream.Marshal([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	b, err = OctetStream.Marshal(wire{b: []byte{3}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 3}, b)

	var w wire
	require.NoError(t, OctetStream.Unmarshal([]byte{0x80, 9}, &w))
	assert.Equal(t, []byte{9}, w.b)

	var raw []byte
	require.NoError(t, OctetStream.Unmarshal([]byte{7}, &raw))
	assert.Equal(t, []byte{7}, raw)

	_, err = OctetStream.Marshal(42)
	assert.Error(t, err)
	assert.Error(t, OctetStream.Unmarshal(nil, new(int)))
	assert.Equal(t, "application/octet-stream", OctetStream.ContentType())
}
