// Package cli реализует командную строку inputcheck.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"inputcheck/internal/signup"
	"inputcheck/internal/validator"
	"inputcheck/pkg/logger"
	"inputcheck/pkg/strutil"
)

// Коды завершения.
const (
	ExitValid   = 0
	ExitInvalid = 1
	ExitUsage   = 2
)

const (
	flagEmail    = "email"
	flagUsername = "username"
	flagPassword = "password"

	msgNoFields        = "at least one of --email, --username or --password is required"
	msgUnexpectedArgs  = "unexpected arguments"
	msgParseFlags      = "failed to parse flags"
	msgInspectionDone  = "inspection finished"
	errWriteResult     = "failed to write result"
	outputValid        = "%s: valid\n"
	outputInvalid      = "%s: invalid (%s)\n"
	outputUsageMessage = "usage: %s [--email EMAIL] [--username NAME] [--password PASSWORD]\n"
)

// Run разбирает аргументы, проверяет переданные поля и возвращает код завершения.
func Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) int {
	log := logger.Log(ctx)

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, outputUsageMessage, name)
		fs.PrintDefaults()
	}

	var form signup.Form
	fs.StringVar(&form.Email, flagEmail, "", "email address to check")
	fs.StringVar(&form.Username, flagUsername, "", "username to check")
	fs.StringVar(&form.Password, flagPassword, "", "password to check")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitValid
		}
		log.Debug(ctx, msgParseFlags, zap.Error(err))
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return ExitUsage
	}

	if fs.NArg() > 0 {
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", msgUnexpectedArgs, fs.Args())
		fs.Usage()
		return ExitUsage
	}

	requested := map[string]bool{
		signup.FieldEmail:    fs.Changed(flagEmail),
		signup.FieldUsername: fs.Changed(flagUsername),
		signup.FieldPassword: fs.Changed(flagPassword),
	}
	if !requested[signup.FieldEmail] && !requested[signup.FieldUsername] && !requested[signup.FieldPassword] {
		_, _ = fmt.Fprintln(stderr, msgNoFields)
		fs.Usage()
		return ExitUsage
	}

	useCase := signup.NewUseCase(validator.New())

	code := ExitValid
	checked := 0
	for _, result := range useCase.Inspect(ctx, form) {
		if !requested[result.Field] {
			continue
		}
		checked++

		label := strutil.Capitalize(result.Field)
		var err error
		if result.Valid {
			_, err = fmt.Fprintf(stdout, outputValid, label)
		} else {
			code = ExitInvalid
			_, err = fmt.Fprintf(stdout, outputInvalid, label, result.Reason)
		}
		if err != nil {
			log.Error(ctx, errWriteResult, zap.Error(err))
			return ExitInvalid
		}
	}

	log.Debug(ctx, msgInspectionDone, zap.Int("checked", checked), zap.Int("exit_code", code))
	return code
}
