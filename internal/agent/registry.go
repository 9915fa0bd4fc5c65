package agent

import (
	"fmt"
	"sync"

	"wallboard/internal/common"
)

// Registry is the process-wide agent cache: one instance per Type, built
// lazily from the shared Config and reused for the process lifetime. There
// is no eviction; a restart is the only way to rebuild an agent.
type Registry struct {
	mu     sync.Mutex
	cfg    Config
	agents map[Type]Agent
}

func NewRegistry(cfg Config) *Registry {
	return &Registry{
		cfg:    cfg,
		agents: make(map[Type]Agent),
	}
}

// GetOrCreate returns the cached agent for t, constructing it on first use.
// The same Type always yields the same instance within one process.
func (r *Registry) GetOrCreate(t Type) (Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.agents[t]; ok {
		return a, nil
	}

	var a Agent
	switch t {
	case TypeChat:
		a = NewChatAgent(r.cfg)
	case TypeSearch:
		a = NewSearchAgent(r.cfg)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownAgentType, t)
	}

	r.agents[t] = a
	return a, nil
}
