// Package signup проверяет поля регистрационной формы.
package signup

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inputcheck/internal/validator"
	"inputcheck/pkg/logger"
	"inputcheck/pkg/strutil"
)

const (
	methodCheck   = "Check"
	methodInspect = "Inspect"

	msgStartCheck      = "checking signup form"
	msgFormValid       = "signup form is valid"
	msgInvalidEmail    = "invalid email format"
	msgInvalidUsername = "invalid username"
	msgInvalidPassword = "invalid password"
	msgStartInspect    = "inspecting signup form"
	msgFieldInspected  = "field inspected"
	msgBlankValue      = "field value consists of whitespace only"

	errCtxValidatingEmail    = "validating email"
	errCtxValidatingUsername = "validating username"
	errCtxValidatingPassword = "validating password"
)

// Имена полей формы.
const (
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldPassword = "password"
)

// Checker определяет проверки полей формы.
type Checker interface {
	CheckEmail(email string) error
	CheckUsername(username string) error
	CheckPassword(password string) error
}

// Form - данные регистрационной формы.
type Form struct {
	Email    string
	Username string
	Password string
}

// Result - итог проверки одного поля.
type Result struct {
	Field  string
	Valid  bool
	Reason string
	Err    error
}

// UseCase проверяет регистрационные формы.
type UseCase struct {
	checker Checker
}

// NewUseCase создает новый экземпляр UseCase.
func NewUseCase(checker Checker) *UseCase {
	return &UseCase{checker: checker}
}

// Check проверяет поля в порядке email, username, password и
// возвращает ошибку первого некорректного поля.
func (u *UseCase) Check(ctx context.Context, form Form) error {
	log := logger.Log(ctx).With(zap.String("method", methodCheck))
	log.Debug(ctx, msgStartCheck)

	if err := u.checker.CheckEmail(form.Email); err != nil {
		log.Debug(ctx, msgInvalidEmail, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}
	if err := u.checker.CheckUsername(form.Username); err != nil {
		log.Debug(ctx, msgInvalidUsername, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxValidatingUsername, err)
	}
	if err := u.checker.CheckPassword(form.Password); err != nil {
		log.Debug(ctx, msgInvalidPassword, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
	}

	log.Info(ctx, msgFormValid, zap.String("username", form.Username))
	return nil
}

// Inspect проверяет все поля формы и возвращает результат для каждого из них.
func (u *UseCase) Inspect(ctx context.Context, form Form) []Result {
	log := logger.Log(ctx).With(zap.String("method", methodInspect))
	log.Debug(ctx, msgStartInspect)

	return []Result{
		u.inspect(ctx, log, FieldEmail, form.Email, u.checker.CheckEmail),
		u.inspect(ctx, log, FieldUsername, form.Username, u.checker.CheckUsername),
		u.inspect(ctx, log, FieldPassword, form.Password, u.checker.CheckPassword),
	}
}

func (u *UseCase) inspect(ctx context.Context, log *logger.Logger, field, value string, check func(string) error) Result {
	log = log.With(zap.String("field", field))

	if !strutil.IsEmpty(value) && strutil.IsBlank(value) {
		log.Warn(ctx, msgBlankValue)
	}

	err := check(value)
	result := Result{Field: field, Valid: err == nil, Err: err}
	if err != nil {
		result.Reason = reason(field, err)
	}

	log.Debug(ctx, msgFieldInspected, zap.Bool("valid", result.Valid))
	return result
}

func reason(field string, err error) string {
	if field == FieldPassword {
		return validator.PasswordReason(err)
	}
	return err.Error()
}
