// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "verdant/internal/delivery/context"
	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// supportService implements the SupportUsecase interface. The flow tree is
// static data; the actions delegate to the user usecase.
type supportService struct {
	users  usecase.UserUsecase
	flow   *entity.SupportFlow
	logger *slog.Logger
}

// SupportServiceParams holds dependencies for SupportService, injected by Fx.
type SupportServiceParams struct {
	fx.In

	Users  usecase.UserUsecase
	Logger *slog.Logger
}

// NewSupportService is the constructor for supportService.
func NewSupportService(params SupportServiceParams) usecase.SupportUsecase {
	return &supportService{
		users:  params.Users,
		flow:   buildSupportFlow(),
		logger: params.Logger,
	}
}

func (srv *supportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetFlow returns the full decision tree.
func (srv *supportService) GetFlow(_ context.Context) (*entity.SupportFlow, error) {
	return srv.flow, nil
}

// GetStep returns a single step of the decision tree.
func (srv *supportService) GetStep(_ context.Context, stepID string) (*entity.SupportStep, error) {
	step, ok := srv.flow.Step(stepID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrSupportStepNotFound, "unknown support step")
	}

	return step, nil
}

// ExecuteAction runs a backend action triggered from a flow option.
func (srv *supportService) ExecuteAction(ctx context.Context, input *usecase.SupportActionInput) (*usecase.SupportActionOutput, error) {
	srv.log(ctx).Info("Executing support action", slog.String("action", string(input.Action)), slog.Any("userID", input.UserID))

	switch input.Action {
	case entity.SupportActionFetchDetails:
		return srv.fetchDetails(ctx, input)
	case entity.SupportActionRecoverPassword:
		return srv.recoverPassword(ctx, input)
	case entity.SupportActionDeleteAccount:
		return srv.deleteAccount(ctx, input)
	default:
		return nil, errors.Wrap(domainerrors.ErrSupportActionUnknown, "unsupported action")
	}
}

func (srv *supportService) fetchDetails(ctx context.Context, input *usecase.SupportActionInput) (*usecase.SupportActionOutput, error) {
	user, err := srv.users.GetProfile(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch account details")
	}

	return &usecase.SupportActionOutput{
		Reply: fmt.Sprintf("You are registered as %s (%s).", user.Name, user.Email),
		User:  user,
	}, nil
}

func (srv *supportService) recoverPassword(ctx context.Context, input *usecase.SupportActionInput) (*usecase.SupportActionOutput, error) {
	user, err := srv.users.GetProfile(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for recovery")
	}

	out, err := srv.users.RecoverPassword(ctx, &usecase.RecoverPasswordInput{Email: user.Email})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue reset token")
	}

	return &usecase.SupportActionOutput{
		Reply:      "A single-use reset token has been issued. Use it within its validity window to set a new password.",
		ResetToken: out.ResetToken,
	}, nil
}

func (srv *supportService) deleteAccount(ctx context.Context, input *usecase.SupportActionInput) (*usecase.SupportActionOutput, error) {
	if input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password is required to delete the account")
	}

	err := srv.users.DeleteAccount(ctx, &usecase.DeleteAccountInput{
		UserID:   input.UserID,
		Password: input.Password,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete account")
	}

	return &usecase.SupportActionOutput{
		Reply: "Your account and all associated data have been removed.",
	}, nil
}

func buildSupportFlow() *entity.SupportFlow {
	steps := []*entity.SupportStep{
		{
			ID:     "root",
			Prompt: "Hi! I'm the NurseryHub assistant. What do you need help with?",
			Options: []entity.SupportOption{
				{Label: "My account", NextStep: "account"},
				{Label: "Bidding and payments", NextStep: "bidding"},
				{Label: "Talk to a human", NextStep: "contact"},
			},
		},
		{
			ID:     "account",
			Prompt: "What would you like to do with your account?",
			Options: []entity.SupportOption{
				{Label: "Show my account details", Action: entity.SupportActionFetchDetails},
				{Label: "I forgot my password", Action: entity.SupportActionRecoverPassword},
				{Label: "Delete my account", NextStep: "delete_confirm"},
				{Label: "Back", NextStep: "root"},
			},
		},
		{
			ID:     "delete_confirm",
			Prompt: "Deleting your account removes your listings, bids and chats permanently. Enter your password to confirm.",
			Options: []entity.SupportOption{
				{Label: "Yes, delete my account", Action: entity.SupportActionDeleteAccount},
				{Label: "Back", NextStep: "account"},
			},
		},
		{
			ID:     "bidding",
			Prompt: "Bids at or above the asking price reach the seller. When the seller accepts a settlement, you'll get a payment link in the chat.",
			Options: []entity.SupportOption{
				{Label: "How do I pay?", NextStep: "payments"},
				{Label: "Back", NextStep: "root"},
			},
		},
		{
			ID:     "payments",
			Prompt: "Open the payment link from your chat, pick UPI, card or cash on delivery, and confirm. You'll receive a receipt in the chat once the payment settles.",
			Options: []entity.SupportOption{
				{Label: "Back", NextStep: "root"},
			},
		},
		{
			ID:     "contact",
			Prompt: "You can reach the nursery team at support@nurseryhub.example. We reply within one business day.",
			Options: []entity.SupportOption{
				{Label: "Back", NextStep: "root"},
			},
		},
	}

	flow := &entity.SupportFlow{
		Root:  "root",
		Steps: make(map[string]*entity.SupportStep, len(steps)),
	}
	for _, step := range steps {
		flow.Steps[step.ID] = step
	}

	return flow
}
