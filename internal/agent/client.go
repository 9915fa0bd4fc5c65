package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// runnerClient talks to the external agent-runner endpoint. Both agent
// implementations share it; they differ only in the agent kind they request
// and the capabilities they advertise.
type runnerClient struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
}

func newRunnerClient(cfg Config) *runnerClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &runnerClient{
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		http:    httpClient,
	}
}

type executeRequest struct {
	Agent    string `json:"agent"`
	Model    string `json:"model"`
	Prompt   string `json:"prompt"`
	UseTools bool   `json:"use_tools"`
}

type executeResponse struct {
	Success  bool           `json:"success"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
	Error    string         `json:"error"`
}

func (c *runnerClient) execute(ctx context.Context, agentType Type, prompt string, useTools bool) (*Result, error) {

	body, err := json.Marshal(executeRequest{
		Agent:    string(agentType),
		Model:    c.model,
		Prompt:   prompt,
		UseTools: useTools,
	})
	if err != nil {
		return nil, fmt.Errorf("error encoding agent request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/execute", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error building agent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling agent endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent endpoint returned %s", resp.Status)
	}

	var decoded executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("error decoding agent response: %w", err)
	}

	metadata := decoded.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	return &Result{
		Success:  decoded.Success,
		Content:  decoded.Content,
		Metadata: metadata,
		Err:      decoded.Error,
	}, nil
}
