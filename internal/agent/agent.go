// Package agent gives the server its two AI collaborators: a chat agent and
// a search-and-summarize agent. Agents are opaque: each one forwards the
// prompt to an external agent-runner endpoint and returns its result
// verbatim. Reasoning and tool execution live behind that endpoint, not
// here. A process-wide Registry constructs agents lazily and caches them for
// the process lifetime.
package agent

import (
	"context"
	"net/http"
)

// Config is the shared configuration every agent is constructed from.
type Config struct {
	// BaseURL is the root of the external agent-runner endpoint.
	BaseURL string
	// Model is the model name forwarded with every execution request.
	Model string
	// APIKey, when set, is sent as a bearer credential to the endpoint.
	APIKey string
	// HTTPClient overrides the client used for endpoint calls. Nil means
	// http.DefaultClient; no timeout is imposed here, any limit is the
	// endpoint's responsibility.
	HTTPClient *http.Client
}

// Result is the outcome of one agent execution.
type Result struct {
	Success  bool
	Content  string
	Metadata map[string]any
	Err      string
}

// Agent is the contract the server consumes. Execute runs one prompt;
// useTools asks the agent to run its tools (web search etc.) while
// answering. Capabilities names what the agent can do, for discovery.
type Agent interface {
	Execute(ctx context.Context, prompt string, useTools bool) (*Result, error)
	Capabilities() []string
}
