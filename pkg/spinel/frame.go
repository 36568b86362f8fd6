package spinel

import "fmt"

const (
	headerFlag     = 0x80
	headerFlagMask = 0xc0
	headerIIDShift = 4
	headerIIDMask  = 0x30
	headerTIDMask  = 0x0f
)

// Header is the first byte of every frame.
type Header byte

// NewHeader builds a header for interface iid carrying transaction tid.
func NewHeader(iid, tid uint8) Header {
	return Header(headerFlag | (iid<<headerIIDShift)&headerIIDMask | tid&headerTIDMask)
}

func (h Header) IID() uint8  { return uint8(h&headerIIDMask) >> headerIIDShift }
func (h Header) TID() uint8  { return uint8(h & headerTIDMask) }
func (h Header) Valid() bool { return byte(h)&headerFlagMask == headerFlag }

// Frame is a decoded property command. Payload aliases the decoded buffer.
type Frame struct {
	Header  Header
	Command Command
	Key     PropKey
	Payload []byte
}

// IsPropCommand reports whether the frame carries a property key.
func IsPropCommand(c Command) bool {
	return c >= CmdPropValueGet && c <= CmdPropValueRemoved
}

// MarshalBinary encodes the frame.
func (f Frame) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 1+3+3+len(f.Payload))
	out = append(out, byte(f.Header))
	out, err := AppendPackedUint(out, uint32(f.Command))
	if err != nil {
		return nil, err
	}
	if IsPropCommand(f.Command) {
		if out, err = AppendPackedUint(out, uint32(f.Key)); err != nil {
			return nil, err
		}
	}
	return append(out, f.Payload...), nil
}

// UnmarshalBinary decodes b into f.
func (f *Frame) UnmarshalBinary(b []byte) error {
	if len(b) == 0 {
		return ErrShortBuffer
	}
	h := Header(b[0])
	if !h.Valid() {
		return fmt.Errorf("spinel: bad header 0x%02x", b[0])
	}
	cmd, n, err := ReadPackedUint(b[1:])
	if err != nil {
		return fmt.Errorf("spinel: command: %w", err)
	}
	rest := b[1+n:]
	*f = Frame{Header: h, Command: Command(cmd)}
	if IsPropCommand(f.Command) {
		key, kn, err := ReadPackedUint(rest)
		if err != nil {
			return fmt.Errorf("spinel: property key: %w", err)
		}
		f.Key = PropKey(key)
		rest = rest[kn:]
	}
	f.Payload = rest
	return nil
}

// Reply builds a response frame carrying the same header.
func (f Frame) Reply(cmd Command, key PropKey, payload []byte) Frame {
	return Frame{Header: f.Header, Command: cmd, Key: key, Payload: payload}
}

// StatusFrame builds a LAST_STATUS notification for st.
func (f Frame) StatusFrame(st Status) Frame {
	p, _ := AppendPackedUint(nil, uint32(st))
	return f.Reply(CmdPropValueIs, PropLastStatus, p)
}
