package models

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"

	dErrors "signup/pkg/domain-errors"
)

// Validation rule parameters. The /validation-rules/ endpoint mirrors these
// constants, so changing one here changes the advertised contract too.
const (
	PasswordMinLength = 8
	UsernameMinLength = 3
	UsernameMaxLength = 20
	FullNameMinLength = 2
	FullNameMaxLength = 50

	// PasswordSpecialChars is the accepted special-character set.
	PasswordSpecialChars = `!@#$%^&*(),.?":{}|<>`
)

var fullNamePattern = regexp.MustCompile(`^[A-Za-z\s\-'.]+$`)

// ValidatePassword enforces password strength: minimum length plus one
// character from each of the uppercase, lowercase, digit, and special classes.
// The first violated rule is reported.
func ValidatePassword(value string) error {
	if utf8.RuneCountInString(value) < PasswordMinLength {
		return dErrors.NewField(dErrors.CodeValidation, "password",
			"password must be at least "+strconv.Itoa(PasswordMinLength)+" characters long")
	}
	if !govalidator.HasUpperCase(value) {
		return dErrors.NewField(dErrors.CodeValidation, "password",
			"password must contain at least one uppercase letter")
	}
	if !govalidator.HasLowerCase(value) {
		return dErrors.NewField(dErrors.CodeValidation, "password",
			"password must contain at least one lowercase letter")
	}
	if !strings.ContainsAny(value, "0123456789") {
		return dErrors.NewField(dErrors.CodeValidation, "password",
			"password must contain at least one number")
	}
	if !strings.ContainsAny(value, PasswordSpecialChars) {
		return dErrors.NewField(dErrors.CodeValidation, "password",
			"password must contain at least one special character")
	}
	return nil
}

// ValidateUsername accepts 3-20 character alphanumeric usernames. An empty
// string fails the alphanumeric check, which doubles as the required check.
func ValidateUsername(value string) error {
	if value == "" || !govalidator.IsAlphanumeric(value) {
		return dErrors.NewField(dErrors.CodeValidation, "username",
			"username must be alphanumeric (letters and numbers only)")
	}
	if !govalidator.StringLength(value, strconv.Itoa(UsernameMinLength), strconv.Itoa(UsernameMaxLength)) {
		return dErrors.NewField(dErrors.CodeValidation, "username",
			"username must be between "+strconv.Itoa(UsernameMinLength)+" and "+strconv.Itoa(UsernameMaxLength)+" characters long")
	}
	return nil
}

// ValidateFullName accepts an absent name outright. A present name must be
// 2-50 characters of letters, whitespace, hyphens, apostrophes, or periods.
func ValidateFullName(value *string) error {
	if value == nil {
		return nil
	}
	if !fullNamePattern.MatchString(*value) {
		return dErrors.NewField(dErrors.CodeValidation, "full_name",
			"full name can only contain letters, spaces, hyphens, apostrophes, and periods")
	}
	if !govalidator.StringLength(*value, strconv.Itoa(FullNameMinLength), strconv.Itoa(FullNameMaxLength)) {
		return dErrors.NewField(dErrors.CodeValidation, "full_name",
			"full name must be between "+strconv.Itoa(FullNameMinLength)+" and "+strconv.Itoa(FullNameMaxLength)+" characters long")
	}
	return nil
}

// ValidateEmail delegates email grammar to govalidator rather than a
// hand-rolled pattern.
func ValidateEmail(value string) error {
	if value == "" || !govalidator.IsEmail(value) {
		return dErrors.NewField(dErrors.CodeValidation, "email",
			"email must be a valid email address")
	}
	return nil
}
