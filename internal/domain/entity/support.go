// Package entity contains the core business objects of the project.
package entity

// SupportActionType identifies a backend action a support flow option can trigger.
type SupportActionType string

const (
	// SupportActionFetchDetails echoes the caller's account details.
	SupportActionFetchDetails SupportActionType = "FETCH_DETAILS"
	// SupportActionRecoverPassword issues a password reset token.
	SupportActionRecoverPassword SupportActionType = "RECOVER_PASSWORD"
	// SupportActionDeleteAccount removes the account after a password check.
	SupportActionDeleteAccount SupportActionType = "DELETE_ACCOUNT"
)

// IsValid checks if the SupportActionType is a known action.
func (a SupportActionType) IsValid() bool {
	switch a {
	case SupportActionFetchDetails, SupportActionRecoverPassword, SupportActionDeleteAccount:
		return true
	default:
		return false
	}
}

// SupportOption is one choice presented at a support flow step. It either
// moves the conversation to NextStep or triggers an Action; never both.
type SupportOption struct {
	Label    string            `json:"label"`               // Button text shown to the user.
	NextStep string            `json:"next_step,omitempty"` // ID of the step to show next.
	Action   SupportActionType `json:"action,omitempty"`    // Backend action to trigger instead.
}

// SupportStep is one node of the scripted support decision tree.
type SupportStep struct {
	ID      string          `json:"id"`      // Stable step identifier, e.g., "root", "account".
	Prompt  string          `json:"prompt"`  // The bot message shown at this step.
	Options []SupportOption `json:"options"` // Choices offered to the user; empty for leaf steps.
}

// SupportFlow is the whole decision tree keyed by step ID.
type SupportFlow struct {
	Root  string                  `json:"root"`  // ID of the entry step.
	Steps map[string]*SupportStep `json:"steps"` // All steps by ID.
}

// Step returns the step with the given ID.
func (f *SupportFlow) Step(id string) (*SupportStep, bool) {
	step, ok := f.Steps[id]

	return step, ok
}
