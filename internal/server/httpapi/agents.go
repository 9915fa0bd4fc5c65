package httpapi

import (
	"fmt"
	"net/http"

	"wallboard/internal/agent"
)

type chatRequest struct {
	Message   string         `json:"message"`
	AgentType string         `json:"agent_type"`
	Context   map[string]any `json:"context,omitempty"`
}

type chatResponse struct {
	Success      bool           `json:"success"`
	Response     string         `json:"response"`
	AgentType    string         `json:"agent_type"`
	Capabilities []string       `json:"capabilities"`
	Metadata     map[string]any `json:"metadata"`
	Error        string         `json:"error,omitempty"`
}

type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Success       bool           `json:"success"`
	Query         string         `json:"query"`
	Summary       string         `json:"summary"`
	SearchResults map[string]any `json:"search_results,omitempty"`
	SourcesCount  int            `json:"sources_count"`
	Error         string         `json:"error,omitempty"`
}

// The chat and search endpoints never surface a 500: any failure past
// request validation is folded into a success:false body so the client
// contract stays uniform.

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {

	var req chatRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.AgentType == "" {
		req.AgentType = string(agent.TypeChat)
	}
	if req.Message == "" {
		s.writeError(w, http.StatusUnprocessableEntity, "message is required")
		return
	}

	agentType, err := agent.ParseType(req.AgentType)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown agent type '%s'", req.AgentType))
		return
	}

	chatFailure := func(msg string) {
		s.writeJSON(w, http.StatusOK, chatResponse{
			Success:      false,
			AgentType:    req.AgentType,
			Capabilities: []string{},
			Metadata:     map[string]any{},
			Error:        msg,
		})
	}

	a, err := s.agents.GetOrCreate(agentType)
	if err != nil {
		s.logger.Error(r.Context(), "agent construction failure", "error", err.Error())
		chatFailure(err.Error())
		return
	}

	result, err := a.Execute(r.Context(), req.Message, false)
	if err != nil {
		s.logger.Error(r.Context(), "chat execution failure", "error", err.Error())
		chatFailure(err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, chatResponse{
		Success:      result.Success,
		Response:     result.Content,
		AgentType:    req.AgentType,
		Capabilities: a.Capabilities(),
		Metadata:     result.Metadata,
		Error:        result.Err,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {

	req := searchRequest{MaxResults: 5}
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Query == "" {
		s.writeError(w, http.StatusUnprocessableEntity, "query is required")
		return
	}

	searchFailure := func(msg string) {
		s.writeJSON(w, http.StatusOK, searchResponse{
			Success: false,
			Query:   req.Query,
			Error:   msg,
		})
	}

	a, err := s.agents.GetOrCreate(agent.TypeSearch)
	if err != nil {
		s.logger.Error(r.Context(), "agent construction failure", "error", err.Error())
		searchFailure(err.Error())
		return
	}

	prompt := fmt.Sprintf(
		"Search for information about: %s. Provide a comprehensive summary with key findings.",
		req.Query,
	)

	result, err := a.Execute(r.Context(), prompt, true)
	if err != nil {
		s.logger.Error(r.Context(), "search execution failure", "error", err.Error())
		searchFailure(err.Error())
		return
	}

	if !result.Success {
		searchFailure(result.Err)
		return
	}

	s.writeJSON(w, http.StatusOK, searchResponse{
		Success:       true,
		Query:         req.Query,
		Summary:       result.Content,
		SearchResults: result.Metadata,
		SourcesCount:  sourcesCount(result.Metadata),
	})
}

func (s *Server) handleAgentCapabilities(w http.ResponseWriter, r *http.Request) {

	capabilitiesFailure := func(msg string) {
		s.writeJSON(w, http.StatusOK, map[string]any{
			"success": false,
			"error":   msg,
		})
	}

	searchAgent, err := s.agents.GetOrCreate(agent.TypeSearch)
	if err != nil {
		capabilitiesFailure(err.Error())
		return
	}
	chatAgent, err := s.agents.GetOrCreate(agent.TypeChat)
	if err != nil {
		capabilitiesFailure(err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"capabilities": map[string]any{
			"search_agent": searchAgent.Capabilities(),
			"chat_agent":   chatAgent.Capabilities(),
		},
	})
}

// sourcesCount extracts how many sources fed a search answer from the
// runner's metadata; "tool_run_count" wins over the legacy "tools_used".
func sourcesCount(metadata map[string]any) int {
	for _, key := range []string{"tool_run_count", "tools_used"} {
		switch v := metadata[key].(type) {
		case float64:
			return int(v)
		case int:
			return v
		}
	}
	return 0
}
