package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// LoginResponse carries the signed token plus the account it belongs to.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
