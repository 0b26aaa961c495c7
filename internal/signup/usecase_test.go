package signup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"inputcheck/internal/signup"
	"inputcheck/internal/validator"
	"inputcheck/pkg/logger"
)

type mockChecker struct {
	mock.Mock
}

func (m *mockChecker) CheckEmail(email string) error {
	return m.Called(email).Error(0)
}

func (m *mockChecker) CheckUsername(username string) error {
	return m.Called(username).Error(0)
}

func (m *mockChecker) CheckPassword(password string) error {
	return m.Called(password).Error(0)
}

var errUnexpected = errors.New("unexpected failure")

func TestCheck(t *testing.T) {
	form := signup.Form{Email: "user@example.com", Username: "user123", Password: "Password123"}

	tests := []struct {
		name        string
		setupMocks  func(m *mockChecker)
		expectedErr error
		errContains string
	}{
		{
			name: "success - every field valid",
			setupMocks: func(m *mockChecker) {
				m.On("CheckEmail", form.Email).Return(nil).Once()
				m.On("CheckUsername", form.Username).Return(nil).Once()
				m.On("CheckPassword", form.Password).Return(nil).Once()
			},
		},
		{
			name: "error - invalid email stops further checks",
			setupMocks: func(m *mockChecker) {
				m.On("CheckEmail", form.Email).Return(validator.ErrInvalidEmail).Once()
			},
			expectedErr: validator.ErrInvalidEmail,
			errContains: "validating email",
		},
		{
			name: "error - invalid username",
			setupMocks: func(m *mockChecker) {
				m.On("CheckEmail", form.Email).Return(nil).Once()
				m.On("CheckUsername", form.Username).Return(validator.ErrUsernameStart).Once()
			},
			expectedErr: validator.ErrUsernameStart,
			errContains: "validating username",
		},
		{
			name: "error - invalid password",
			setupMocks: func(m *mockChecker) {
				m.On("CheckEmail", form.Email).Return(nil).Once()
				m.On("CheckUsername", form.Username).Return(nil).Once()
				m.On("CheckPassword", form.Password).Return(errUnexpected).Once()
			},
			expectedErr: errUnexpected,
			errContains: "validating password",
		},
	}

	for _, ttt := range tests {
		t.Run(ttt.name, func(t *testing.T) {
			checker := new(mockChecker)
			ttt.setupMocks(checker)

			err := signup.NewUseCase(checker).Check(context.Background(), form)

			if ttt.expectedErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ttt.expectedErr)
				assert.Contains(t, err.Error(), ttt.errContains)
			}
			checker.AssertExpectations(t)
		})
	}
}

func TestCheckWithValidator(t *testing.T) {
	useCase := signup.NewUseCase(validator.New())
	ctx := context.Background()

	require.NoError(t, useCase.Check(ctx, signup.Form{
		Email: "user@example.com", Username: "User-Name", Password: "Passw0rd",
	}))

	err := useCase.Check(ctx, signup.Form{
		Email: "user@example.com", Username: "user123", Password: "password123",
	})
	assert.ErrorIs(t, err, validator.ErrPasswordNoUppercase)
}

func TestInspect(t *testing.T) {
	useCase := signup.NewUseCase(validator.New())

	results := useCase.Inspect(context.Background(), signup.Form{
		Email:    "user@domain",
		Username: "test_user",
		Password: "PASSWORD123",
	})
	require.Len(t, results, 3)

	assert.Equal(t, signup.FieldEmail, results[0].Field)
	assert.False(t, results[0].Valid)
	assert.ErrorIs(t, results[0].Err, validator.ErrInvalidEmail)
	assert.Equal(t, validator.ErrInvalidEmail.Error(), results[0].Reason)

	assert.Equal(t, signup.FieldUsername, results[1].Field)
	assert.True(t, results[1].Valid)
	assert.Empty(t, results[1].Reason)
	assert.NoError(t, results[1].Err)

	assert.Equal(t, signup.FieldPassword, results[2].Field)
	assert.False(t, results[2].Valid)
	assert.Equal(t, "Password must contain at least one lowercase letter", results[2].Reason)
}

func TestInspectBlankValues(t *testing.T) {
	useCase := signup.NewUseCase(validator.New())

	results := useCase.Inspect(context.Background(), signup.Form{Email: " ", Username: "   ", Password: "        "})
	require.Len(t, results, 3)

	for _, result := range results {
		assert.False(t, result.Valid, result.Field)
	}
	assert.Equal(t, "Password must contain at least one uppercase letter", results[2].Reason)
}

func TestCheckLogsValidForm(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.ContextWithRequestID(context.Background(), "req-1")
	ctx = logger.Bind(ctx, logger.FromZap(zap.New(core)))

	useCase := signup.NewUseCase(validator.New())
	require.NoError(t, useCase.Check(ctx, signup.Form{
		Email: "user@example.com", Username: "user123", Password: "Password123",
	}))

	infos := logs.FilterLevelExact(zapcore.InfoLevel).AllUntimed()
	require.Len(t, infos, 1)
	assert.Equal(t, "signup form is valid", infos[0].Message)
	assert.Equal(t, "user123", infos[0].ContextMap()["username"])
	assert.Equal(t, "req-1", infos[0].ContextMap()[logger.RequestID])

	logs.TakeAll()
	require.Error(t, useCase.Check(ctx, signup.Form{Email: "user@domain"}))
	assert.Zero(t, logs.FilterLevelExact(zapcore.InfoLevel).Len())
}
