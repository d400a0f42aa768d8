package helper

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type PersonBlock struct {
	Name string `json:"name" validate:"required"`
}

type childBlock struct {
	PersonBlock
	ProgramID string `json:"program_id" validate:"required,uuid"`
}

type signupRequest struct {
	Email    string       `json:"email"    validate:"required,email"`
	Kind     string       `json:"kind"     validate:"omitempty,oneof=a b"`
	Children []childBlock `json:"children" validate:"required,min=1,dive"`
}

func TestFieldErrors(t *testing.T) {
	v := NewValidator()

	err := v.Struct(signupRequest{
		Email:    "nope",
		Kind:     "c",
		Children: []childBlock{{ProgramID: "x"}},
	})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, []string{"must be a valid email"}, fields["email"])
	assert.Equal(t, []string{"must be one of: a b"}, fields["kind"])
	assert.Equal(t, []string{"is required"}, fields["children[0].name"])
	assert.Equal(t, []string{"must be a valid uuid"}, fields["children[0].program_id"])
	assert.Len(t, fields, 4)
}

func TestFieldErrors_NotValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
}

func TestFieldKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Req.email", "email"},
		{"MinorEnrollmentRequest.children[0].PersonRequest.name", "children[0].name"},
		{"MinorEnrollmentRequest.guardian.PersonRequest.last_name", "guardian.last_name"},
		{"Root", "Root"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fieldKey(tt.in), tt.in)
	}
}
