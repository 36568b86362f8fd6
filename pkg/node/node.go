// Package node defines the property subsystem that dispatched handlers
// operate on.
package node

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
)

// Node stores and mutates property values. Errors should carry a
// spinel.Status (see spinel.Errorf) so the frame processor can report it.
type Node interface {
	Get(ctx context.Context, key spinel.PropKey) ([]byte, error)
	// Set replaces the value and returns the value now in effect.
	Set(ctx context.Context, key spinel.PropKey, value []byte) ([]byte, error)
	Insert(ctx context.Context, key spinel.PropKey, item []byte) error
	Remove(ctx context.Context, key spinel.PropKey, item []byte) error
}

// Resetter is implemented by nodes that support a software reset.
type Resetter interface {
	Reset(ctx context.Context) error
}

// MaxItemLen is the largest list item a uint16 length prefix can carry.
const MaxItemLen = math.MaxUint16

// CheckItem rejects list items that EncodeItems cannot represent.
func CheckItem(item []byte) error {
	if len(item) > MaxItemLen {
		return spinel.Errorf(spinel.StatusInvalidArgument, "item of %d bytes exceeds %d", len(item), MaxItemLen)
	}
	return nil
}

// EncodeItems packs list items as uint16 little-endian length-prefixed
// blobs. It panics on an item longer than MaxItemLen; stores reject those
// with CheckItem before they are kept.
func EncodeItems(items [][]byte) []byte {
	n := 0
	for _, it := range items {
		if len(it) > MaxItemLen {
			panic(fmt.Sprintf("node: list item of %d bytes exceeds %d", len(it), MaxItemLen))
		}
		n += 2 + len(it)
	}
	out := make([]byte, 0, n)
	for _, it := range items {
		out = binary.LittleEndian.AppendUint16(out, uint16(len(it)))
		out = append(out, it...)
	}
	return out
}

// DecodeItems is the inverse of EncodeItems.
func DecodeItems(b []byte) ([][]byte, error) {
	var out [][]byte
	for len(b) > 0 {
		if len(b) < 2 {
			return nil, spinel.Errorf(spinel.StatusParseError, "truncated item length")
		}
		n := int(binary.LittleEndian.Uint16(b))
		b = b[2:]
		if len(b) < n {
			return nil, spinel.Errorf(spinel.StatusParseError, "item of %d bytes truncated to %d", n, len(b))
		}
		out = append(out, append([]byte(nil), b[:n]...))
		b = b[n:]
	}
	return out, nil
}
