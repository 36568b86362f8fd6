package bridge

import (
	"net/http"

	"github.com/joeydtaylor/ncpbridge/pkg/dispatch"
)

type registryBody struct {
	Profile  string              `json:"profile"`
	Features []string            `json:"features"`
	Sizes    map[string]int      `json:"sizes"`
	Keys     map[string][]string `json:"keys"`
}

func (s *server) registry(w http.ResponseWriter, _ *http.Request) {
	reg := s.proc.Registry()
	out := registryBody{
		Profile: s.profile.Name,
		Sizes:   make(map[string]int, dispatch.NumVerbs),
		Keys:    make(map[string][]string, dispatch.NumVerbs),
	}
	for _, f := range reg.Features().Flags() {
		out.Features = append(out.Features, f.String())
	}
	for _, v := range dispatch.Verbs() {
		t := reg.Table(v)
		names := make([]string, 0, len(t))
		for _, e := range t {
			names = append(names, e.Key.String())
		}
		out.Sizes[v.String()] = len(t)
		out.Keys[v.String()] = names
	}
	writeJSON(w, http.StatusOK, out)
}
