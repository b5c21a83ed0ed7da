// Package models defines the registration request/record/view shapes and the
// field validators applied before a record may be constructed.
package models

import (
	dErrors "signup/pkg/domain-errors"
)

// ValidationStatusPassed marks every stored record; a record only reaches the
// store by passing validation.
const ValidationStatusPassed = "passed"

// RegistrationRequest is the inbound payload for user creation. FullName is a
// pointer so "absent" and "empty string" stay distinguishable.
type RegistrationRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name"`
}

// Validate runs every field validator in declaration order and returns the
// first failure. Validation is all-or-nothing per request.
func (r *RegistrationRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := ValidateUsername(r.Username); err != nil {
		return err
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if err := ValidatePassword(r.Password); err != nil {
		return err
	}
	if err := ValidateFullName(r.FullName); err != nil {
		return err
	}
	return nil
}

// UserRecord is the stored representation of an accepted registration.
// Immutable once created; the password is retained but never serialized out.
type UserRecord struct {
	ID               string
	Username         string
	Email            string
	Password         string
	FullName         *string
	JoinDate         string
	ValidationStatus string
}

// UserView is the client-facing projection of a UserRecord. It deliberately
// has no password field so the secret cannot leak through serialization.
type UserView struct {
	Username         string  `json:"username"`
	Email            string  `json:"email"`
	FullName         *string `json:"full_name"`
	JoinDate         string  `json:"join_date"`
	ValidationStatus string  `json:"validation_status"`
}

// View projects the record into its response shape.
func (u UserRecord) View() *UserView {
	return &UserView{
		Username:         u.Username,
		Email:            u.Email,
		FullName:         u.FullName,
		JoinDate:         u.JoinDate,
		ValidationStatus: u.ValidationStatus,
	}
}
