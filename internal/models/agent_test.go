package models

import "testing"

func TestIsValidAgentTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{AgentStatusPending, AgentStatusApproved, true},
		{AgentStatusPending, AgentStatusRejected, true},

		// Approval and rejection are one-shot
		{AgentStatusApproved, AgentStatusRejected, false},
		{AgentStatusApproved, AgentStatusPending, false},
		{AgentStatusRejected, AgentStatusApproved, false},
		{AgentStatusRejected, AgentStatusPending, false},

		{"nonexistent", AgentStatusApproved, false},
		{AgentStatusPending, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidAgentTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidAgentTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAgentTerminalStatusesHaveNoTransitions(t *testing.T) {
	for _, status := range []string{AgentStatusApproved, AgentStatusRejected} {
		if transitions := ValidAgentTransitions[status]; len(transitions) != 0 {
			t.Errorf("terminal status %q should have no transitions, got %v", status, transitions)
		}
	}
}
