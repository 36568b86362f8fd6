package bridge

import (
	"encoding/hex"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joeydtaylor/ncpbridge/pkg/codec"
	"github.com/joeydtaylor/ncpbridge/pkg/dispatch"
	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
	"go.uber.org/zap"
)

const maxBody = 64 << 10

type valueBody struct {
	Value string `json:"value"`
}

type propertyBody struct {
	Key   string `json:"key"`
	ID    uint32 `json:"id"`
	Value string `json:"value"`
}

type errorBody struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// property runs one verb against the key in the path through the frame
// processor, so HTTP callers see exactly what a host would.
func (s *server) property(v dispatch.Verb) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := spinel.ParsePropKey(chi.URLParam(r, "key"))
		if err != nil {
			s.writeError(w, spinel.StatusInvalidArgument, err)
			return
		}

		var payload []byte
		if v != dispatch.Get {
			if payload, err = readValue(w, r); err != nil {
				s.writeError(w, spinel.StatusParseError, err)
				return
			}
		}

		req := spinel.Frame{
			Header:  spinel.NewHeader(0, s.nextTID()),
			Command: commandOf(v),
			Key:     key,
			Payload: payload,
		}
		resp := s.proc.Process(r.Context(), req)
		if st, ok := statusReply(req, resp); ok && st != spinel.StatusOK {
			s.writeError(w, st, fmt.Errorf("%s %s: %s", v, key, st))
			return
		}

		writeJSON(w, http.StatusOK, propertyBody{
			Key:   key.String(),
			ID:    uint32(key),
			Value: hex.EncodeToString(resp.Payload),
		})
	}
}

func readValue(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	var body valueBody
	if err := codec.JSONStrict.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(body.Value)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}
	return b, nil
}

// statusReply reports whether resp is a LAST_STATUS notification rather
// than the value of the requested property.
func statusReply(req, resp spinel.Frame) (spinel.Status, bool) {
	if resp.Key != spinel.PropLastStatus || req.Key == spinel.PropLastStatus && req.Command == spinel.CmdPropValueGet {
		return 0, false
	}
	st, _, err := spinel.ReadPackedUint(resp.Payload)
	if err != nil {
		return spinel.StatusInternalError, true
	}
	return spinel.Status(st), true
}

func commandOf(v dispatch.Verb) spinel.Command {
	switch v {
	case dispatch.Set:
		return spinel.CmdPropValueSet
	case dispatch.Insert:
		return spinel.CmdPropValueInsert
	case dispatch.Remove:
		return spinel.CmdPropValueRemove
	}
	return spinel.CmdPropValueGet
}

func httpStatus(st spinel.Status) int {
	switch st {
	case spinel.StatusOK:
		return http.StatusOK
	case spinel.StatusPropNotFound:
		return http.StatusNotFound
	case spinel.StatusInvalidArgument,
		spinel.StatusParseError,
		spinel.StatusInvalidCommand,
		spinel.StatusInvalidCommandForProp,
		spinel.StatusCmdTooBig:
		return http.StatusBadRequest
	case spinel.StatusAlready,
		spinel.StatusItemNotFound,
		spinel.StatusBusy,
		spinel.StatusInvalidState,
		spinel.StatusInProgress:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (s *server) writeError(w http.ResponseWriter, st spinel.Status, err error) {
	code := httpStatus(st)
	if code >= http.StatusInternalServerError {
		s.log.Error("property request failed", zap.Stringer("status", st), zap.Error(err))
	}
	writeJSON(w, code, errorBody{Status: st.String(), Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	b, err := codec.JSONStrict.Marshal(v)
	if err != nil {
		http.Error(w, "encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", codec.JSONStrict.ContentType())
	w.WriteHeader(code)
	_, _ = w.Write(b)
}
