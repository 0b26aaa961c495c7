// Package validator содержит проверки формата email, надежности пароля и формата имени пользователя.
package validator

import (
	"errors"
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Ограничения правил проверки.
const (
	MinPasswordLength = 8
	MinUsernameLength = 3
	MaxUsernameLength = 20
)

// Шаблоны проверок.
const (
	EmailPattern    = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	UsernamePattern = `^[a-zA-Z][a-zA-Z0-9_-]*$`

	upperPattern = `[A-Z]`
	lowerPattern = `[a-z]`
	digitPattern = `\p{Nd}`
)

// MsgPasswordValid - причина, возвращаемая для корректного пароля.
const MsgPasswordValid = "Password is valid"

// Validator выполняет проверки пользовательского ввода.
// Скомпилированные шаблоны не изменяются после создания, поэтому
// экземпляр можно использовать из нескольких горутин.
type Validator struct {
	email    *regexp.Regexp
	username *regexp.Regexp
	upper    *regexp.Regexp
	lower    *regexp.Regexp
	digit    *regexp.Regexp
}

// New создает новый экземпляр Validator.
func New() *Validator {
	return &Validator{
		email:    regexp.MustCompile(EmailPattern),
		username: regexp.MustCompile(UsernamePattern),
		upper:    regexp.MustCompile(upperPattern),
		lower:    regexp.MustCompile(lowerPattern),
		digit:    regexp.MustCompile(digitPattern),
	}
}

// ValidateEmail проверяет формат email.
func (v *Validator) ValidateEmail(email string) bool {
	return v.CheckEmail(email) == nil
}

// ValidatePassword проверяет надежность пароля и возвращает причину
// первого нарушенного правила.
func (v *Validator) ValidatePassword(password string) (bool, string) {
	if rule := v.failedPasswordRule(password); rule != nil {
		return false, rule.reason
	}
	return true, MsgPasswordValid
}

// ValidateUsername проверяет формат имени пользователя.
func (v *Validator) ValidateUsername(username string) bool {
	return v.CheckUsername(username) == nil
}

// CheckEmail возвращает ErrInvalidEmail, если email не соответствует шаблону.
func (v *Validator) CheckEmail(email string) error {
	if email == "" {
		return ErrInvalidEmail
	}
	if !v.email.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// CheckPassword возвращает ошибку первого нарушенного правила пароля.
func (v *Validator) CheckPassword(password string) error {
	if rule := v.failedPasswordRule(password); rule != nil {
		return rule.err
	}
	return nil
}

// CheckUsername возвращает ошибку первого нарушенного правила имени пользователя.
func (v *Validator) CheckUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}

	length := utf8.RuneCountInString(username)
	if length < MinUsernameLength || length > MaxUsernameLength {
		return ErrUsernameLength
	}

	first, _ := utf8.DecodeRuneInString(username)
	if !unicode.IsLetter(first) {
		return ErrUsernameStart
	}

	if !v.username.MatchString(username) {
		return ErrUsernameCharset
	}

	return nil
}

// PasswordReason возвращает текст причины для ошибки CheckPassword.
func PasswordReason(err error) string {
	if err == nil {
		return MsgPasswordValid
	}
	for i := range passwordRules {
		if errors.Is(err, passwordRules[i].err) {
			return passwordRules[i].reason
		}
	}
	return err.Error()
}

func (v *Validator) failedPasswordRule(password string) *passwordRule {
	for i := range passwordRules {
		if passwordRules[i].failed(v, password) {
			return &passwordRules[i]
		}
	}
	return nil
}
