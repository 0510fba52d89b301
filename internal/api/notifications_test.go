package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shaharia-lab/topicast/internal/notification"
	"github.com/shaharia-lab/topicast/internal/service"
)

func TestHandleBroadcast(t *testing.T) {
	longTitle := strings.Repeat("a", 90<<10)
	tooLongTitle := strings.Repeat("a", 100<<10)

	tests := []struct {
		name       string
		body       string
		wantReq    *notification.BroadcastRequest
		id         string
		err        error
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "success",
			body:       `{"title":"Hi","body":"There"}`,
			wantReq:    &notification.BroadcastRequest{Title: "Hi", Body: "There"},
			id:         "msg-123",
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"success": true, "response": "msg-123"},
		},
		{
			name: "success with data",
			body: `{"title":"Quiz","body":"New quiz","data":{"quizId":"q1"}}`,
			wantReq: &notification.BroadcastRequest{
				Title: "Quiz", Body: "New quiz", Data: map[string]string{"quizId": "q1"},
			},
			id:         "projects/p/messages/9",
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"success": true, "response": "projects/p/messages/9"},
		},
		{
			name:       "null data",
			body:       `{"title":"Hi","body":"There","data":null}`,
			wantReq:    &notification.BroadcastRequest{Title: "Hi", Body: "There"},
			id:         "msg-1",
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"success": true, "response": "msg-1"},
		},
		{
			name:       "validation error from service",
			body:       `{"title":""}`,
			wantReq:    &notification.BroadcastRequest{},
			err:        &service.ValidationError{Message: service.ErrMsgTitleBodyRequired},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "title and body are required in the request body"},
		},
		{
			name:       "empty body is validated",
			body:       ``,
			wantReq:    &notification.BroadcastRequest{},
			err:        &service.ValidationError{Message: service.ErrMsgTitleBodyRequired},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "title and body are required in the request body"},
		},
		{
			name:       "delivery error",
			body:       `{"title":"Hi","body":"There"}`,
			wantReq:    &notification.BroadcastRequest{Title: "Hi", Body: "There"},
			err:        &service.DeliveryError{Provider: "fcm", Err: errors.New("quota exceeded")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"success": false, "error": "quota exceeded"},
		},
		{
			name:       "unexpected error",
			body:       `{"title":"Hi","body":"There"}`,
			wantReq:    &notification.BroadcastRequest{Title: "Hi", Body: "There"},
			err:        errors.New("something else"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"success": false, "error": "something else"},
		},
		{
			name:       "invalid JSON",
			body:       `{invalid`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "invalid JSON body"},
		},
		{
			name:       "data with non-string value",
			body:       `{"title":"Hi","body":"There","data":{"count":3}}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "data must be an object of string values"},
		},
		{
			name:       "data with null value",
			body:       `{"title":"Hi","body":"There","data":{"k":null}}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "data must be an object of string values"},
		},
		{
			name:       "non-string title",
			body:       `{"title":5,"body":"There"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "invalid JSON body"},
		},
		{
			name:       "trailing garbage",
			body:       `{"title":"Hi","body":"There"}garbage`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "invalid JSON body"},
		},
		{
			name:       "second object",
			body:       `{"title":"Hi","body":"There"}{"title":"Again"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "invalid JSON body"},
		},
		{
			name:       "trailing whitespace",
			body:       "{\"title\":\"Hi\",\"body\":\"There\"}\n\t ",
			wantReq:    &notification.BroadcastRequest{Title: "Hi", Body: "There"},
			id:         "msg-ws",
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"success": true, "response": "msg-ws"},
		},
		{
			name:       "body under size limit",
			body:       `{"title":"` + longTitle + `","body":"There"}`,
			wantReq:    &notification.BroadcastRequest{Title: longTitle, Body: "There"},
			id:         "msg-big",
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"success": true, "response": "msg-big"},
		},
		{
			name:       "body over size limit",
			body:       `{"title":"` + tooLongTitle + `","body":"There"}`,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   map[string]any{"error": "request body too large"},
		},
		{
			name:       "data not an object",
			body:       `{"title":"Hi","body":"There","data":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "data must be an object of string values"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			if tc.wantReq != nil {
				h.broadcastSvc.On("Broadcast", mock.Anything, *tc.wantReq).Return(tc.id, tc.err).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/notifications/broadcast", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := h.do(req)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantBody, decodeBody(t, w))
			if tc.wantReq == nil {
				h.broadcastSvc.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestHandleTestBroadcast(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "success",
			id:         "msg-test",
			wantStatus: http.StatusOK,
			wantBody: map[string]any{
				"success":  true,
				"message":  "Test broadcast notification sent to all-devices",
				"response": "msg-test",
			},
		},
		{
			name:       "provider failure",
			err:        &service.DeliveryError{Provider: "fcm", Err: errors.New("quota exceeded")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"success": false, "error": "quota exceeded"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			h.broadcastSvc.On("BroadcastTest", mock.Anything).Return(tc.id, tc.err).Once()

			w := h.do(httptest.NewRequest(http.MethodGet, "/notifications/broadcast/test", nil))

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantBody, decodeBody(t, w))
		})
	}
}
