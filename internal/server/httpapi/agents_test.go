package httpapi

import (
	"errors"
	"net/http"
	"testing"

	"wallboard/internal/agent"
)

func TestChat_DefaultsToChatAgent(t *testing.T) {
	fa := &fakeAgent{
		result: &agent.Result{Success: true, Content: "hello there", Metadata: map[string]any{}},
		caps:   []string{"conversation"},
	}
	ap := &fakeAgentProvider{agents: map[agent.Type]agent.Agent{agent.TypeChat: fa}}
	s := newTestServer(nil, nil, nil, ap)

	rec := doJSON(t, s, http.MethodPost, "/api/chat",
		map[string]string{"message": "hi"}, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody[chatResponse](t, rec)
	if !body.Success || body.Response != "hello there" {
		t.Fatalf("unexpected response: %+v", body)
	}
	if body.AgentType != "chat" {
		t.Fatalf("agent_type = %q, want chat", body.AgentType)
	}
	if fa.gotTools {
		t.Fatalf("chat should not request tools")
	}
}

func TestChat_UnknownAgentType(t *testing.T) {
	s := newTestServer(nil, nil, nil, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/chat",
		map[string]string{"message": "hi", "agent_type": "oracle"}, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := decodeBody[errorResponse](t, rec)
	if body.Detail != "Unknown agent type 'oracle'" {
		t.Fatalf("unexpected detail: %q", body.Detail)
	}
}

func TestChat_ExecutionFailureFoldedIntoBody(t *testing.T) {
	fa := &fakeAgent{execErr: errors.New("runner unreachable")}
	ap := &fakeAgentProvider{agents: map[agent.Type]agent.Agent{agent.TypeChat: fa}}
	s := newTestServer(nil, nil, nil, ap)

	rec := doJSON(t, s, http.MethodPost, "/api/chat",
		map[string]string{"message": "hi"}, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with success:false", rec.Code)
	}
	body := decodeBody[chatResponse](t, rec)
	if body.Success {
		t.Fatalf("expected success=false, got %+v", body)
	}
	if body.Error != "runner unreachable" {
		t.Fatalf("unexpected error: %q", body.Error)
	}
}

func TestChat_ProviderFailureFoldedIntoBody(t *testing.T) {
	ap := &fakeAgentProvider{err: errors.New("no api key")}
	s := newTestServer(nil, nil, nil, ap)

	rec := doJSON(t, s, http.MethodPost, "/api/chat",
		map[string]string{"message": "hi"}, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with success:false", rec.Code)
	}
	body := decodeBody[chatResponse](t, rec)
	if body.Success || body.Error != "no api key" {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestChat_MissingMessage(t *testing.T) {
	s := newTestServer(nil, nil, nil, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/chat", map[string]string{}, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestSearch_OK(t *testing.T) {
	fa := &fakeAgent{
		result: &agent.Result{
			Success:  true,
			Content:  "summary of findings",
			Metadata: map[string]any{"tool_run_count": float64(3)},
		},
	}
	ap := &fakeAgentProvider{agents: map[agent.Type]agent.Agent{agent.TypeSearch: fa}}
	s := newTestServer(nil, nil, nil, ap)

	rec := doJSON(t, s, http.MethodPost, "/api/search",
		map[string]string{"query": "zion"}, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody[searchResponse](t, rec)
	if !body.Success || body.Summary != "summary of findings" {
		t.Fatalf("unexpected response: %+v", body)
	}
	if body.Query != "zion" || body.SourcesCount != 3 {
		t.Fatalf("query=%q sources=%d, want zion/3", body.Query, body.SourcesCount)
	}
	if !fa.gotTools {
		t.Fatalf("search should request tools")
	}
}

func TestSearch_QueryEmbeddedInPrompt(t *testing.T) {
	fa := &fakeAgent{result: &agent.Result{Success: true, Metadata: map[string]any{}}}
	ap := &fakeAgentProvider{agents: map[agent.Type]agent.Agent{agent.TypeSearch: fa}}
	s := newTestServer(nil, nil, nil, ap)

	doJSON(t, s, http.MethodPost, "/api/search", map[string]string{"query": "nebuchadnezzar"}, nil)

	want := "Search for information about: nebuchadnezzar. Provide a comprehensive summary with key findings."
	if fa.gotPrompt != want {
		t.Fatalf("prompt = %q, want %q", fa.gotPrompt, want)
	}
}

func TestSearch_FailureResultFoldedIntoBody(t *testing.T) {
	fa := &fakeAgent{result: &agent.Result{Success: false, Err: "rate limited"}}
	ap := &fakeAgentProvider{agents: map[agent.Type]agent.Agent{agent.TypeSearch: fa}}
	s := newTestServer(nil, nil, nil, ap)

	rec := doJSON(t, s, http.MethodPost, "/api/search",
		map[string]string{"query": "zion"}, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody[searchResponse](t, rec)
	if body.Success || body.Error != "rate limited" {
		t.Fatalf("unexpected response: %+v", body)
	}
}

func TestSearch_MissingQuery(t *testing.T) {
	s := newTestServer(nil, nil, nil, nil)

	rec := doJSON(t, s, http.MethodPost, "/api/search", map[string]string{}, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestAgentCapabilities(t *testing.T) {
	chatAgent := &fakeAgent{caps: []string{"conversation", "general_knowledge"}}
	searchAgent := &fakeAgent{caps: []string{"web_search"}}
	ap := &fakeAgentProvider{agents: map[agent.Type]agent.Agent{
		agent.TypeChat:   chatAgent,
		agent.TypeSearch: searchAgent,
	}}
	s := newTestServer(nil, nil, nil, ap)

	rec := doJSON(t, s, http.MethodGet, "/api/agents/capabilities", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := decodeBody[map[string]any](t, rec)
	if body["success"] != true {
		t.Fatalf("expected success=true, got %+v", body)
	}
	caps, ok := body["capabilities"].(map[string]any)
	if !ok {
		t.Fatalf("missing capabilities map: %+v", body)
	}
	if _, ok := caps["chat_agent"]; !ok {
		t.Fatalf("missing chat_agent capabilities: %+v", caps)
	}
	if _, ok := caps["search_agent"]; !ok {
		t.Fatalf("missing search_agent capabilities: %+v", caps)
	}
}

func TestSourcesCount(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]any
		want     int
	}{
		{"tool_run_count", map[string]any{"tool_run_count": float64(4)}, 4},
		{"tools_used fallback", map[string]any{"tools_used": float64(2)}, 2},
		{"preferred key wins", map[string]any{"tool_run_count": 1, "tools_used": float64(9)}, 1},
		{"absent", map[string]any{}, 0},
		{"nil", nil, 0},
		{"wrong type", map[string]any{"tool_run_count": "three"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sourcesCount(tt.metadata); got != tt.want {
				t.Fatalf("sourcesCount() = %d, want %d", got, tt.want)
			}
		})
	}
}
