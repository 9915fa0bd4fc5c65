package agent

import "context"

// ChatAgent answers free-form conversation prompts. It never runs tools.
type ChatAgent struct {
	client *runnerClient
}

func NewChatAgent(cfg Config) *ChatAgent {
	return &ChatAgent{client: newRunnerClient(cfg)}
}

func (a *ChatAgent) Execute(ctx context.Context, prompt string, useTools bool) (*Result, error) {
	return a.client.execute(ctx, TypeChat, prompt, useTools)
}

func (a *ChatAgent) Capabilities() []string {
	return []string{"conversation", "general_knowledge", "context_retention"}
}
