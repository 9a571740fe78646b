// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"verdant/internal/domain/entity"

	"github.com/google/uuid"
)

// SupportActionInput triggers a backend action from the support flow.
type SupportActionInput struct {
	UserID   uuid.UUID
	Action   entity.SupportActionType
	Password string // required for DELETE_ACCOUNT
}

// SupportActionOutput is the result surfaced back into the support chat.
type SupportActionOutput struct {
	Reply      string       // Bot reply text shown in the chat.
	User       *entity.User // Set for FETCH_DETAILS.
	ResetToken string       // Set for RECOVER_PASSWORD.
}

// SupportUsecase defines the interface for the scripted support chatbot.
type SupportUsecase interface {
	// GetFlow returns the full decision tree.
	GetFlow(ctx context.Context) (*entity.SupportFlow, error)

	// GetStep returns a single step of the decision tree.
	GetStep(ctx context.Context, stepID string) (*entity.SupportStep, error)

	// ExecuteAction runs a backend action triggered from a flow option.
	ExecuteAction(ctx context.Context, input *SupportActionInput) (*SupportActionOutput, error)
}
