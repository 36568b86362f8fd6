package codec

import (
	"encoding"
	"fmt"
)

type octetStream struct{}

// OctetStream carries raw bytes or values implementing the encoding
// binary interfaces, such as spinel frames.
var OctetStream Codec = octetStream{}

func (octetStream) Marshal(v any) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return x, nil
	case encoding.BinaryMarshaler:
		return x.MarshalBinary()
	}
	return nil, fmt.Errorf("octet-stream: cannot marshal %T", v)
}

func (octetStream) Unmarshal(data []byte, v any) error {
	switch x := v.(type) {
	case *[]byte:
		*x = append((*x)[:0], data...)
		return nil
	case encoding.BinaryUnmarshaler:
		return x.UnmarshalBinary(data)
	}
	return fmt.Errorf("octet-stream: cannot unmarshal into %T", v)
}

func (octetStream) ContentType() string { return "application/octet-stream" }
