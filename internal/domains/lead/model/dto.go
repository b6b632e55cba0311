package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateLeadRequest is the public lead-capture payload.
type CreateLeadRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
	Source   string `json:"source"`
	Message  string `json:"message"`
}

func (r CreateLeadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Phone,
			validation.Required.Error("phone is required"),
			validation.Length(1, 32),
		),
		validation.Field(&r.Interest,
			validation.Required.Error("interest is required"),
			validation.Length(1, 255),
		),
	)
}

// ContactFormRequest is the contact-page payload; it becomes a lead with
// source contact_form and the subject as the interest.
type ContactFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (r ContactFormRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Phone, validation.Required.Error("phone is required")),
		validation.Field(&r.Subject, validation.Required.Error("subject is required")),
		validation.Field(&r.Message, validation.Required.Error("message is required")),
	)
}

// ListFilter narrows the admin lead listing.
type ListFilter struct {
	Status string
	Source string
	Limit  int
	Skip   int
}
