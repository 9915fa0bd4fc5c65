package agent

import (
	"fmt"

	"wallboard/internal/common"
)

// Type is the closed set of agent kinds. Adding a kind means adding a
// constant here and a branch in Registry.GetOrCreate; there is no dynamic
// dispatch on raw strings past ParseType.
type Type string

const (
	TypeChat   Type = "chat"
	TypeSearch Type = "search"
)

// ParseType maps a wire-level agent type string to a Type. Anything outside
// the closed set fails with common.ErrUnknownAgentType.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeChat:
		return TypeChat, nil
	case TypeSearch:
		return TypeSearch, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownAgentType, s)
}
