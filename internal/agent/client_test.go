package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func runnerStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestExecute_Success(t *testing.T) {
	var gotReq executeRequest
	srv := runnerStub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/execute" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key-1" {
			t.Errorf("missing bearer credential, got %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(executeResponse{
			Success:  true,
			Content:  "There is no spoon.",
			Metadata: map[string]any{"tool_run_count": 3},
		})
	})

	a := NewSearchAgent(Config{BaseURL: srv.URL, Model: "m-1", APIKey: "key-1"})

	res, err := a.Execute(context.Background(), "spoons", true)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !res.Success || res.Content != "There is no spoon." {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Metadata["tool_run_count"] != float64(3) {
		t.Fatalf("metadata not passed through: %+v", res.Metadata)
	}

	if gotReq.Agent != "search" || gotReq.Model != "m-1" || gotReq.Prompt != "spoons" || !gotReq.UseTools {
		t.Fatalf("unexpected request body: %+v", gotReq)
	}
}

func TestExecute_AgentLevelFailure(t *testing.T) {
	srv := runnerStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(executeResponse{
			Success: false,
			Error:   "model overloaded",
		})
	})

	a := NewChatAgent(Config{BaseURL: srv.URL})

	res, err := a.Execute(context.Background(), "hello", false)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if res.Success {
		t.Fatalf("expected success=false")
	}
	if res.Err != "model overloaded" {
		t.Fatalf("unexpected error message: %q", res.Err)
	}
	if res.Metadata == nil {
		t.Fatalf("metadata must never be nil")
	}
}

func TestExecute_EndpointError(t *testing.T) {
	srv := runnerStub(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	a := NewChatAgent(Config{BaseURL: srv.URL})

	_, err := a.Execute(context.Background(), "hello", false)
	if err == nil {
		t.Fatalf("expected error for non-200 endpoint response")
	}
}

func TestExecute_EndpointUnreachable(t *testing.T) {
	a := NewChatAgent(Config{BaseURL: "http://127.0.0.1:1"})

	_, err := a.Execute(context.Background(), "hello", false)
	if err == nil {
		t.Fatalf("expected error for unreachable endpoint")
	}
}
