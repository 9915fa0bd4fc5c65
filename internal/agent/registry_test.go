package agent

import (
	"errors"
	"sync"
	"testing"

	"wallboard/internal/common"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"chat", TypeChat, false},
		{"search", TypeSearch, false},
		{"ftp", "", true},
		{"", "", true},
		{"Chat", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if tt.wantErr {
				if !errors.Is(err, common.ErrUnknownAgentType) {
					t.Fatalf("expected common.ErrUnknownAgentType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGetOrCreate_IdentityStable(t *testing.T) {
	r := NewRegistry(Config{BaseURL: "http://agents.local", Model: "m"})

	a1, err := r.GetOrCreate(TypeChat)
	if err != nil {
		t.Fatalf("GetOrCreate error: %v", err)
	}
	a2, err := r.GetOrCreate(TypeChat)
	if err != nil {
		t.Fatalf("GetOrCreate error: %v", err)
	}
	if a1 != a2 {
		t.Fatalf("expected the same chat agent instance on repeat calls")
	}

	s, err := r.GetOrCreate(TypeSearch)
	if err != nil {
		t.Fatalf("GetOrCreate error: %v", err)
	}
	if s == a1 {
		t.Fatalf("chat and search agents must be distinct instances")
	}
}

func TestGetOrCreate_UnknownType(t *testing.T) {
	r := NewRegistry(Config{})

	_, err := r.GetOrCreate(Type("ftp"))
	if !errors.Is(err, common.ErrUnknownAgentType) {
		t.Fatalf("expected common.ErrUnknownAgentType, got %v", err)
	}
}

func TestGetOrCreate_ConcurrentFirstAccess(t *testing.T) {
	r := NewRegistry(Config{})

	const n = 16
	agents := make([]Agent, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			a, err := r.GetOrCreate(TypeSearch)
			if err != nil {
				t.Errorf("GetOrCreate error: %v", err)
				return
			}
			agents[i] = a
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if agents[i] != agents[0] {
			t.Fatalf("concurrent first access produced distinct instances")
		}
	}
}

func TestCapabilities(t *testing.T) {
	chat := NewChatAgent(Config{})
	search := NewSearchAgent(Config{})

	if len(chat.Capabilities()) == 0 || len(search.Capabilities()) == 0 {
		t.Fatalf("agents must advertise capabilities")
	}
}
