package spinel

import "fmt"

// Command is a Spinel command identifier.
type Command uint32

const (
	CmdNoop              Command = 0
	CmdReset             Command = 1
	CmdPropValueGet      Command = 2
	CmdPropValueSet      Command = 3
	CmdPropValueInsert   Command = 4
	CmdPropValueRemove   Command = 5
	CmdPropValueIs       Command = 6
	CmdPropValueInserted Command = 7
	CmdPropValueRemoved  Command = 8
)

var commandNames = map[Command]string{
	CmdNoop:              "NOOP",
	CmdReset:             "RESET",
	CmdPropValueGet:      "PROP_VALUE_GET",
	CmdPropValueSet:      "PROP_VALUE_SET",
	CmdPropValueInsert:   "PROP_VALUE_INSERT",
	CmdPropValueRemove:   "PROP_VALUE_REMOVE",
	CmdPropValueIs:       "PROP_VALUE_IS",
	CmdPropValueInserted: "PROP_VALUE_INSERTED",
	CmdPropValueRemoved:  "PROP_VALUE_REMOVED",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return fmt.Sprintf("CMD_%d", uint32(c))
}
