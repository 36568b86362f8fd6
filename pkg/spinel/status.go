package spinel

import (
	"errors"
	"fmt"
)

// Status is the value carried by PROP_LAST_STATUS.
type Status uint32

const (
	StatusOK                    Status = 0
	StatusFailure               Status = 1
	StatusUnimplemented         Status = 2
	StatusInvalidArgument       Status = 3
	StatusInvalidState          Status = 4
	StatusInvalidCommand        Status = 5
	StatusInvalidInterface      Status = 6
	StatusInternalError         Status = 7
	StatusSecurityError         Status = 8
	StatusParseError            Status = 9
	StatusInProgress            Status = 10
	StatusNoMem                 Status = 11
	StatusBusy                  Status = 12
	StatusPropNotFound          Status = 13
	StatusDropped               Status = 14
	StatusEmpty                 Status = 15
	StatusCmdTooBig             Status = 16
	StatusNoAck                 Status = 17
	StatusCCAFailure            Status = 18
	StatusAlready               Status = 19
	StatusItemNotFound          Status = 20
	StatusInvalidCommandForProp Status = 21

	StatusResetPowerOn  Status = 112
	StatusResetSoftware Status = 114
)

var statusNames = map[Status]string{
	StatusOK:                    "OK",
	StatusFailure:               "FAILURE",
	StatusUnimplemented:         "UNIMPLEMENTED",
	StatusInvalidArgument:       "INVALID_ARGUMENT",
	StatusInvalidState:          "INVALID_STATE",
	StatusInvalidCommand:        "INVALID_COMMAND",
	StatusInvalidInterface:      "INVALID_INTERFACE",
	StatusInternalError:         "INTERNAL_ERROR",
	StatusSecurityError:         "SECURITY_ERROR",
	StatusParseError:            "PARSE_ERROR",
	StatusInProgress:            "IN_PROGRESS",
	StatusNoMem:                 "NOMEM",
	StatusBusy:                  "BUSY",
	StatusPropNotFound:          "PROP_NOT_FOUND",
	StatusDropped:               "DROPPED",
	StatusEmpty:                 "EMPTY",
	StatusCmdTooBig:             "CMD_TOO_BIG",
	StatusNoAck:                 "NO_ACK",
	StatusCCAFailure:            "CCA_FAILURE",
	StatusAlready:               "ALREADY",
	StatusItemNotFound:          "ITEM_NOT_FOUND",
	StatusInvalidCommandForProp: "INVALID_COMMAND_FOR_PROP",
	StatusResetPowerOn:          "RESET_POWER_ON",
	StatusResetSoftware:         "RESET_SOFTWARE",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("STATUS_%d", uint32(s))
}

// Error wraps a Status so handlers can return it through the error channel.
type Error struct {
	Status Status
	Msg    string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "spinel: " + e.Status.String()
	}
	return fmt.Sprintf("spinel: %s: %s", e.Status, e.Msg)
}

// Errorf builds an *Error with a formatted message.
func Errorf(st Status, format string, args ...any) error {
	return &Error{Status: st, Msg: fmt.Sprintf(format, args...)}
}

// StatusOf maps err onto the status reported to the host. A nil error is OK;
// anything that does not carry a Status is reported as FAILURE.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Status
	}
	return StatusFailure
}
