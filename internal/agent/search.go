package agent

import "context"

// SearchAgent searches external sources and summarizes what it finds. When
// tools are requested, the runner reports how many tool runs fed the answer
// in the result metadata ("tool_run_count").
type SearchAgent struct {
	client *runnerClient
}

func NewSearchAgent(cfg Config) *SearchAgent {
	return &SearchAgent{client: newRunnerClient(cfg)}
}

func (a *SearchAgent) Execute(ctx context.Context, prompt string, useTools bool) (*Result, error) {
	return a.client.execute(ctx, TypeSearch, prompt, useTools)
}

func (a *SearchAgent) Capabilities() []string {
	return []string{"web_search", "summarization", "source_tracking"}
}
