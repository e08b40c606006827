package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-captioner/models"
)

// Field names accepted by RequestValidator.
const (
	FieldUsername = "username"
	// FieldPassword only requires a non-empty password, as login does.
	FieldPassword = "password"
	// FieldNewPassword rejects blank passwords, as registration does.
	FieldNewPassword = "new_password"
	FieldEmail       = "email"
	FieldText        = "text"
)

// Length limits, in runes except for passwords, which are bounded in bytes
// since the whole value is fed to the password hash.
const (
	MaxUsernameLength = 64
	MaxPasswordBytes  = 1024
	MaxEmailLength    = 254
	MaxCaptionLength  = 2000
)

var (
	credentialFields = []string{FieldUsername, FieldNewPassword, FieldEmail}
	editFields       = []string{FieldText}
)

// RequestValidator validates models.Credentials and models.EditCaptionRequest.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate checks obj. Without fields, credentials are validated as a
// registration (username, new password, email) and edits by their text.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.EditCaptionRequest:
		return v.validateEdit(value, fields...)
	case *models.EditCaptionRequest:
		return v.validateEdit(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = credentialFields
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldUsername:
			err = checkText(c.Username, MaxUsernameLength, ErrEmptyUsername, ErrUsernameTooLong)
		case FieldPassword:
			if c.Password == "" {
				err = ErrEmptyPassword
			} else if len(c.Password) > MaxPasswordBytes {
				err = ErrPasswordTooLong
			}
		case FieldNewPassword:
			if strings.TrimSpace(c.Password) == "" {
				err = ErrEmptyPassword
			} else if len(c.Password) > MaxPasswordBytes {
				err = ErrPasswordTooLong
			}
		case FieldEmail:
			err = checkText(c.Email, MaxEmailLength, ErrEmptyEmail, ErrEmailTooLong)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *RequestValidator) validateEdit(e models.EditCaptionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = editFields
	}

	for _, field := range fields {
		if field != FieldText {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := checkText(e.Text, MaxCaptionLength, ErrEmptyCaption, ErrCaptionTooLong); err != nil {
			return err
		}
	}
	return nil
}

// checkText rejects blank values and values longer than maxRunes.
func checkText(s string, maxRunes int, errEmpty, errTooLong error) error {
	if strings.TrimSpace(s) == "" {
		return errEmpty
	}
	if utf8.RuneCountInString(s) > maxRunes {
		return errTooLong
	}
	return nil
}
