package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
)

// RegisterUserCommand signs up a staff account.
type RegisterUserCommand struct {
	email    string
	password string
	fullName string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(email, password, fullName string) (RegisterUserCommand, error) {
	var errList []error
	if strings.TrimSpace(email) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		errList = append(errList, ErrPasswordIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		email:    strings.TrimSpace(email),
		password: password,
		fullName: strings.TrimSpace(fullName),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) FullName() string {
	return c.fullName
}
