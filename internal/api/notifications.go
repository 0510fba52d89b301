package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shaharia-lab/topicast/internal/notification"
	"github.com/shaharia-lab/topicast/internal/service"
)

const (
	errDataNotStringMap = "data must be an object of string values"
	errBodyTooLarge     = "request body too large"

	maxBroadcastBodyBytes = 100 << 10

	testBroadcastConfirmation = "Test broadcast notification sent to all-devices"
)

type broadcastResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

type testBroadcastResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Response string `json:"response"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// handleBroadcast sends caller-supplied content to every device subscribed
// to the all-devices topic.
func (s *Server) handleBroadcast(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBroadcastBodyBytes)
	req, status, msg := decodeBroadcastRequest(r.Body)
	if msg != "" {
		writeError(w, status, msg)
		return
	}

	id, err := s.broadcastSvc.Broadcast(r.Context(), req)
	if err != nil {
		s.writeBroadcastError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, broadcastResponse{Success: true, Response: id})
}

// handleTestBroadcast sends the fixed test broadcast.
func (s *Server) handleTestBroadcast(w http.ResponseWriter, r *http.Request) {
	id, err := s.broadcastSvc.BroadcastTest(r.Context())
	if err != nil {
		s.writeBroadcastError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, testBroadcastResponse{
		Success:  true,
		Message:  testBroadcastConfirmation,
		Response: id,
	})
}

func (s *Server) writeBroadcastError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		writeError(w, http.StatusBadRequest, vErr.Error())
		return
	}

	var dErr *service.DeliveryError
	if !errors.As(err, &dErr) {
		s.logger.Error("unexpected broadcast error",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	writeJSON(w, http.StatusInternalServerError, failureResponse{Success: false, Error: err.Error()})
}

// broadcastPayload mirrors notification.BroadcastRequest with pointer data
// values so that explicit nulls can be told apart from empty strings.
type broadcastPayload struct {
	Title string             `json:"title"`
	Body  string             `json:"body"`
	Data  map[string]*string `json:"data"`
}

// decodeBroadcastRequest parses the request body as a single JSON object.
// An empty body decodes to the zero request so that validation reports the
// missing fields. On failure it returns the status and client error message;
// the message is empty on success.
func decodeBroadcastRequest(body io.Reader) (notification.BroadcastRequest, int, string) {
	dec := json.NewDecoder(body)

	var p broadcastPayload
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return notification.BroadcastRequest{}, 0, ""
		}
		status, msg := decodeError(err)
		return notification.BroadcastRequest{}, status, msg
	}

	// Anything but whitespace after the object is rejected.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			status, msg := decodeError(err)
			return notification.BroadcastRequest{}, status, msg
		}
		return notification.BroadcastRequest{}, http.StatusBadRequest, errInvalidJSONBody
	}

	req := notification.BroadcastRequest{Title: p.Title, Body: p.Body}
	if p.Data != nil {
		req.Data = make(map[string]string, len(p.Data))
		for k, v := range p.Data {
			if v == nil {
				return notification.BroadcastRequest{}, http.StatusBadRequest, errDataNotStringMap
			}
			req.Data[k] = *v
		}
	}
	return req, 0, ""
}

func decodeError(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, errBodyTooLarge
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && (typeErr.Field == "data" || strings.HasPrefix(typeErr.Field, "data.")) {
		return http.StatusBadRequest, errDataNotStringMap
	}
	return http.StatusBadRequest, errInvalidJSONBody
}
