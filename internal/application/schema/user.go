// Package schema declares the request payloads and their validation rules.
// Validation runs before any service or persistence work; failures surface
// per field, keyed by the JSON field name.
package schema

import (
	"net/mail"
	"strings"

	"github.com/ecotoken/platform-api/internal/apperr"
)

type CreateUser struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (in *CreateUser) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(in.FirstName) == "" {
		fields["firstName"] = "You must specify a first name."
	}
	if !validEmail(in.Email) {
		fields["email"] = "A valid email is required."
	}
	if len(in.Username) < 3 {
		fields["username"] = "Username must be at least 3 characters."
	} else if len(in.Username) > 32 {
		fields["username"] = "A shorter username is required."
	}
	if len(in.Password) < 8 {
		fields["password"] = "Password must be at least 8 characters."
	} else if len(in.Password) > 64 {
		fields["password"] = "A shorter password is required."
	}
	if in.ConfirmPassword != in.Password {
		fields["confirmPassword"] = "Passwords don't match!"
	}

	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}

// UpdateUser is a partial update; empty fields are left unchanged. Bounds
// match CreateUser for every field that is present.
type UpdateUser struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (in *UpdateUser) Validate() error {
	fields := map[string]string{}

	if in.Email != "" && !validEmail(in.Email) {
		fields["email"] = "A valid email is required."
	}
	if in.Username != "" {
		if len(in.Username) < 3 {
			fields["username"] = "Username must be at least 3 characters."
		} else if len(in.Username) > 32 {
			fields["username"] = "A shorter username is required."
		}
	}
	if in.Password != "" {
		if len(in.Password) < 8 {
			fields["password"] = "Password must be at least 8 characters."
		} else if len(in.Password) > 64 {
			fields["password"] = "A shorter password is required."
		}
		if in.ConfirmPassword != in.Password {
			fields["confirmPassword"] = "Passwords don't match!"
		}
	}

	if len(fields) > 0 {
		return apperr.Validation(fields)
	}
	return nil
}

type UsernameCheck struct {
	Username string `json:"username"`
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
