package impl

import (
	"context"
	"testing"

	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	mockUC "verdant/internal/mocks/usecase"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// supportServiceFixtures holds all test dependencies for support service tests.
type supportServiceFixtures struct {
	service usecase.SupportUsecase
	users   *mockUC.MockUserUsecase
}

func createTestSupportService(t *testing.T) supportServiceFixtures {
	users := mockUC.NewMockUserUsecase(t)

	srv := NewSupportService(SupportServiceParams{
		Users:  users,
		Logger: newTestLogger(),
	})

	return supportServiceFixtures{
		service: srv,
		users:   users,
	}
}

func TestSupportService_GetFlow_TreeIsWellFormed(t *testing.T) {
	fx := createTestSupportService(t)

	flow, err := fx.service.GetFlow(context.Background())
	require.NoError(t, err)
	require.NotNil(t, flow)

	// The root exists and every option points at a known step or an action.
	root, ok := flow.Steps[flow.Root]
	require.True(t, ok)
	assert.NotEmpty(t, root.Options)

	for _, step := range flow.Steps {
		assert.NotEmpty(t, step.Prompt)
		for _, option := range step.Options {
			if option.NextStep != "" {
				_, ok := flow.Steps[option.NextStep]
				assert.True(t, ok, "option %q points at missing step %q", option.Label, option.NextStep)
			} else {
				assert.NotEmpty(t, option.Action, "option %q has neither next step nor action", option.Label)
			}
		}
	}
}

func TestSupportService_GetStep_Success(t *testing.T) {
	fx := createTestSupportService(t)

	step, err := fx.service.GetStep(context.Background(), "account")
	require.NoError(t, err)
	assert.Equal(t, "account", step.ID)
	assert.NotEmpty(t, step.Options)
}

func TestSupportService_GetStep_Unknown(t *testing.T) {
	fx := createTestSupportService(t)

	step, err := fx.service.GetStep(context.Background(), "nonsense")
	assert.Nil(t, step)
	assert.ErrorIs(t, err, domainerrors.ErrSupportStepNotFound)
}

func TestSupportService_ExecuteAction_FetchDetails(t *testing.T) {
	fx := createTestSupportService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Asha", Email: "asha@example.com"}

	fx.users.EXPECT().
		GetProfile(ctx, userID).
		Return(user, nil)

	output, err := fx.service.ExecuteAction(ctx, &usecase.SupportActionInput{
		UserID: userID,
		Action: entity.SupportActionFetchDetails,
	})
	require.NoError(t, err)
	assert.Contains(t, output.Reply, "Asha")
	assert.Contains(t, output.Reply, "asha@example.com")
	assert.Equal(t, user, output.User)
	assert.Empty(t, output.ResetToken)
}

func TestSupportService_ExecuteAction_RecoverPassword(t *testing.T) {
	fx := createTestSupportService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.users.EXPECT().
		GetProfile(ctx, userID).
		Return(&entity.User{ID: userID, Email: "asha@example.com"}, nil)

	fx.users.EXPECT().
		RecoverPassword(ctx, &usecase.RecoverPasswordInput{Email: "asha@example.com"}).
		Return(&usecase.RecoverPasswordOutput{ResetToken: "raw-reset-token"}, nil)

	output, err := fx.service.ExecuteAction(ctx, &usecase.SupportActionInput{
		UserID: userID,
		Action: entity.SupportActionRecoverPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "raw-reset-token", output.ResetToken)
	assert.NotEmpty(t, output.Reply)
}

func TestSupportService_ExecuteAction_DeleteAccount(t *testing.T) {
	fx := createTestSupportService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.users.EXPECT().
		DeleteAccount(ctx, &usecase.DeleteAccountInput{UserID: userID, Password: "Str0ng!Pass"}).
		Return(nil)

	output, err := fx.service.ExecuteAction(ctx, &usecase.SupportActionInput{
		UserID:   userID,
		Action:   entity.SupportActionDeleteAccount,
		Password: "Str0ng!Pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Reply)
}

func TestSupportService_ExecuteAction_DeleteAccountRequiresPassword(t *testing.T) {
	fx := createTestSupportService(t)

	output, err := fx.service.ExecuteAction(context.Background(), &usecase.SupportActionInput{
		UserID: uuid.New(),
		Action: entity.SupportActionDeleteAccount,
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSupportService_ExecuteAction_DeleteAccountWrongPassword(t *testing.T) {
	fx := createTestSupportService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.users.EXPECT().
		DeleteAccount(ctx, &usecase.DeleteAccountInput{UserID: userID, Password: "wrong"}).
		Return(errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch during account deletion"))

	output, err := fx.service.ExecuteAction(ctx, &usecase.SupportActionInput{
		UserID:   userID,
		Action:   entity.SupportActionDeleteAccount,
		Password: "wrong",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSupportService_ExecuteAction_UnknownAction(t *testing.T) {
	fx := createTestSupportService(t)

	output, err := fx.service.ExecuteAction(context.Background(), &usecase.SupportActionInput{
		UserID: uuid.New(),
		Action: entity.SupportActionType("MAKE_COFFEE"),
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSupportActionUnknown)
}
