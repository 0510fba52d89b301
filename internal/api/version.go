package api

import (
	"net/http"

	"github.com/shaharia-lab/topicast/internal/build"
)

// handleVersion reports the build info of the running binary.
func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, build.Current())
}
