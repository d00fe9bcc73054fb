package validator

import (
	"strings"
	"testing"

	domainerrors "taskflow/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name        string `json:"name" validate:"required,max=10"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,maxbytes=72"`
	Description string `json:"description" validate:"max=20"`
	Status      string `query:"status" validate:"omitempty,oneof=TODO IN_PROGRESS COMPLETED"`
	Page        int    `query:"page" validate:"min=1"`
	Limit       int    `query:"limit" validate:"min=1,max=100"`
}

func validSample() sampleRequest {
	return sampleRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret123",
		Page:     1,
		Limit:    10,
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected a validation error, got %v", err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	return validationErr.Fields()
}

func TestValidate_Valid(t *testing.T) {
	req := validSample()

	assert.NoError(t, New().Validate(&req))
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *sampleRequest)
		field  string
		want   string
	}{
		{name: "required", mutate: func(r *sampleRequest) { r.Name = "" }, field: "name", want: "Name is required"},
		{name: "string max", mutate: func(r *sampleRequest) { r.Name = strings.Repeat("a", 11) }, field: "name", want: "Name must not exceed 10 characters"},
		{name: "string min", mutate: func(r *sampleRequest) { r.Password = "abc" }, field: "password", want: "Password must be at least 6 characters"},
		{name: "max bytes", mutate: func(r *sampleRequest) { r.Password = strings.Repeat("é", 40) }, field: "password", want: "Password must not exceed 72 bytes"},
		{name: "email", mutate: func(r *sampleRequest) { r.Email = "not-an-email" }, field: "email", want: "Invalid email address"},
		{name: "description override", mutate: func(r *sampleRequest) { r.Description = strings.Repeat("d", 21) }, field: "description", want: "Description too long"},
		{name: "oneof", mutate: func(r *sampleRequest) { r.Status = "DONE" }, field: "status", want: "Status must be one of: TODO, IN_PROGRESS, COMPLETED"},
		{name: "numeric min", mutate: func(r *sampleRequest) { r.Page = 0 }, field: "page", want: "Page must be at least 1"},
		{name: "numeric max", mutate: func(r *sampleRequest) { r.Limit = 101 }, field: "limit", want: "Limit must be at most 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSample()
			tt.mutate(&req)

			fields := fieldsOf(t, New().Validate(&req))

			assert.Equal(t, tt.want, fields[tt.field])
			assert.Len(t, fields, 1)
		})
	}
}

func TestValidate_KeepsFirstMessagePerField(t *testing.T) {
	req := validSample()
	req.Name = ""
	req.Email = ""

	fields := fieldsOf(t, New().Validate(&req))

	assert.Equal(t, map[string]string{
		"name":  "Name is required",
		"email": "Email is required",
	}, fields)
}
