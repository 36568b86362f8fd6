package bridge

import (
	"io"
	"net/http"

	"github.com/joeydtaylor/ncpbridge/pkg/codec"
	"github.com/joeydtaylor/ncpbridge/pkg/spinel"
	"go.uber.org/zap"
)

const maxFrame = 2048

func (s *server) frames(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxFrame))
	if err != nil {
		s.writeError(w, spinel.StatusCmdTooBig, err)
		return
	}
	f, err := s.proc.Decode(raw)
	if err != nil {
		s.writeError(w, spinel.StatusParseError, err)
		return
	}
	if mutates(f.Command) && !s.canWrite(w, r) {
		return
	}

	out, err := codec.OctetStream.Marshal(s.proc.Process(r.Context(), f))
	if err != nil {
		s.log.Error("encode reply frame", zap.Error(err))
		http.Error(w, "encode reply", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", codec.OctetStream.ContentType())
	_, _ = w.Write(out)
}

func mutates(c spinel.Command) bool {
	switch c {
	case spinel.CmdPropValueSet, spinel.CmdPropValueInsert, spinel.CmdPropValueRemove, spinel.CmdReset:
		return true
	}
	return false
}
