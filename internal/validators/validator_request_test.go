package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-captioner/models"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRequestValidator_Credentials(t *testing.T) {
	valid := models.Credentials{Username: "alice", Password: "s3cret", Email: "alice@example.com"}

	tests := []struct {
		name    string
		creds   models.Credentials
		fields  []string
		wantErr error
	}{
		{name: "valid registration", creds: valid},
		{name: "blank username", creds: models.Credentials{Username: " ", Password: "p", Email: "e"}, wantErr: ErrEmptyUsername},
		{name: "username too long", creds: models.Credentials{Username: strings.Repeat("a", MaxUsernameLength+1), Password: "p", Email: "e"}, wantErr: ErrUsernameTooLong},
		{name: "multibyte username at the limit", creds: models.Credentials{Username: strings.Repeat("é", MaxUsernameLength), Password: "p", Email: "e"}},
		{name: "blank new password", creds: models.Credentials{Username: "alice", Password: "   ", Email: "e"}, wantErr: ErrEmptyPassword},
		{name: "password too long", creds: models.Credentials{Username: "alice", Password: strings.Repeat("x", MaxPasswordBytes+1), Email: "e"}, wantErr: ErrPasswordTooLong},
		{name: "missing email", creds: models.Credentials{Username: "alice", Password: "p"}, wantErr: ErrEmptyEmail},
		{name: "email too long", creds: models.Credentials{Username: "alice", Password: "p", Email: strings.Repeat("e", MaxEmailLength+1)}, wantErr: ErrEmailTooLong},
		{
			name:   "login ignores email",
			creds:  models.Credentials{Username: "alice", Password: "p"},
			fields: []string{FieldUsername, FieldPassword},
		},
		{
			name:   "login accepts a whitespace password",
			creds:  models.Credentials{Username: "alice", Password: " "},
			fields: []string{FieldUsername, FieldPassword},
		},
		{
			name:    "login requires a password",
			creds:   models.Credentials{Username: "alice"},
			fields:  []string{FieldUsername, FieldPassword},
			wantErr: ErrEmptyPassword,
		},
		{name: "unknown field", creds: valid, fields: []string{"role"}, wantErr: ErrUnknownField},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointers are validated the same way
			creds := tt.creds
			assert.ErrorIs(t, v.Validate(context.Background(), &creds, tt.fields...), tt.wantErr)
		})
	}
}

func TestRequestValidator_Edit(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.EditCaptionRequest{Text: "a dog running"}))
	assert.NoError(t, v.Validate(ctx, &models.EditCaptionRequest{Text: strings.Repeat("ж", MaxCaptionLength)}))
	assert.ErrorIs(t, v.Validate(ctx, models.EditCaptionRequest{Text: "\t\n"}), ErrEmptyCaption)
	assert.ErrorIs(t, v.Validate(ctx, models.EditCaptionRequest{Text: strings.Repeat("a", MaxCaptionLength+1)}), ErrCaptionTooLong)
	assert.ErrorIs(t, v.Validate(ctx, models.EditCaptionRequest{Text: "x"}, FieldEmail), ErrUnknownField)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestRequestValidator_NonBlankTextProperty(t *testing.T) {
	v := NewRequestValidator()
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringN(0, 40, -1).Draw(t, "text")

		err := v.Validate(context.Background(), models.EditCaptionRequest{Text: text})

		if (strings.TrimSpace(text) == "") != (err != nil) {
			t.Fatalf("text %q: err = %v", text, err)
		}
	})
}
