package validator

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Ошибки проверки пользовательского ввода.
var (
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = fmt.Errorf("password must contain at least %d characters", MinPasswordLength)
	ErrPasswordNoUppercase = errors.New("password must contain an uppercase letter")
	ErrPasswordNoLowercase = errors.New("password must contain a lowercase letter")
	ErrPasswordNoDigit     = errors.New("password must contain a digit")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrUsernameLength      = fmt.Errorf("username must be %d-%d characters long", MinUsernameLength, MaxUsernameLength)
	ErrUsernameStart       = errors.New("username must start with a letter")
	ErrUsernameCharset     = errors.New("username may contain only letters, digits, underscores and hyphens")
)

// Причины отказа для ValidatePassword.
const (
	MsgPasswordEmpty       = "Password cannot be empty"
	MsgPasswordNoUppercase = "Password must contain at least one uppercase letter"
	MsgPasswordNoLowercase = "Password must contain at least one lowercase letter"
	MsgPasswordNoDigit     = "Password must contain at least one digit"
)

// MsgPasswordTooShort зависит от MinPasswordLength.
var MsgPasswordTooShort = fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)

// passwordRule связывает правило пароля с его ошибкой и причиной.
type passwordRule struct {
	err    error
	reason string
	failed func(v *Validator, password string) bool
}

// Порядок элементов задает приоритет правил.
var passwordRules = []passwordRule{
	{
		err:    ErrEmptyPassword,
		reason: MsgPasswordEmpty,
		failed: func(_ *Validator, password string) bool { return password == "" },
	},
	{
		err:    ErrPasswordTooShort,
		reason: MsgPasswordTooShort,
		failed: func(_ *Validator, password string) bool {
			return utf8.RuneCountInString(password) < MinPasswordLength
		},
	},
	{
		err:    ErrPasswordNoUppercase,
		reason: MsgPasswordNoUppercase,
		failed: func(v *Validator, password string) bool { return !v.upper.MatchString(password) },
	},
	{
		err:    ErrPasswordNoLowercase,
		reason: MsgPasswordNoLowercase,
		failed: func(v *Validator, password string) bool { return !v.lower.MatchString(password) },
	},
	{
		err:    ErrPasswordNoDigit,
		reason: MsgPasswordNoDigit,
		failed: func(v *Validator, password string) bool { return !v.digit.MatchString(password) },
	},
}
