package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/motorhub/motorhub-backend/pkg/types"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error {
	return f.err
}

func TestLive(t *testing.T) {
	w := httptest.NewRecorder()
	Live()(w, httptest.NewRequest("GET", "/health/live", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	var envelope struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if envelope.Data["status"] != "ok" {
		t.Fatalf("unexpected payload: %v", envelope.Data)
	}
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		db     *fakePinger
		cache  *fakePinger
		status int
	}{
		{"all healthy", &fakePinger{}, &fakePinger{}, http.StatusOK},
		{"database down", &fakePinger{err: errors.New("conn refused")}, &fakePinger{}, http.StatusServiceUnavailable},
		{"redis down", &fakePinger{}, &fakePinger{err: errors.New("conn refused")}, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Ready(tc.db, tc.cache, nil)(w, httptest.NewRequest("GET", "/health/ready", nil))

			if w.Code != tc.status {
				t.Fatalf("unexpected status: %d, body %s", w.Code, w.Body.String())
			}
			if tc.status != http.StatusOK {
				var envelope types.ErrorEnvelope
				if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
					t.Fatalf("decode body: %v", err)
				}
				if envelope.Error.Code != "DEPENDENCY_ERROR" {
					t.Fatalf("unexpected error code: %s", envelope.Error.Code)
				}
			}
		})
	}
}
