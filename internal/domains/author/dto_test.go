package author

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAuthorInput() AuthorInput {
	return AuthorInput{
		FullName:    "George Orwell",
		BirthDate:   "1903-06-25",
		CityOfBirth: "Motihari",
		Email:       "george.orwell@example.com",
	}
}

func TestAuthorInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AuthorInput)
		wantErr map[string]string // field -> expected message, empty for valid
	}{
		{
			name:    "valid input",
			mutate:  func(r *AuthorInput) {},
			wantErr: nil,
		},
		{
			name:    "missing full name",
			mutate:  func(r *AuthorInput) { r.FullName = "" },
			wantErr: map[string]string{"fullName": "Full name is required"},
		},
		{
			name:    "missing birth date",
			mutate:  func(r *AuthorInput) { r.BirthDate = "" },
			wantErr: map[string]string{"birthDate": "Birth date is required"},
		},
		{
			name:    "malformed birth date",
			mutate:  func(r *AuthorInput) { r.BirthDate = "25/06/1903" },
			wantErr: map[string]string{"birthDate": "Birth date must be a valid date (YYYY-MM-DD)"},
		},
		{
			name:    "impossible calendar date",
			mutate:  func(r *AuthorInput) { r.BirthDate = "1903-02-30" },
			wantErr: map[string]string{"birthDate": "Birth date must be a valid date (YYYY-MM-DD)"},
		},
		{
			name:    "missing city of birth",
			mutate:  func(r *AuthorInput) { r.CityOfBirth = "" },
			wantErr: map[string]string{"cityOfBirth": "City of birth is required"},
		},
		{
			name:    "multi-label domain email accepted",
			mutate:  func(r *AuthorInput) { r.Email = "g.orwell@mail.example.co.uk" },
			wantErr: nil,
		},
		{
			name:    "malformed email",
			mutate:  func(r *AuthorInput) { r.Email = "not-an-email" },
			wantErr: map[string]string{"email": "Email is invalid"},
		},
		{
			name: "all violations reported together",
			mutate: func(r *AuthorInput) {
				r.FullName = ""
				r.BirthDate = "yesterday"
				r.CityOfBirth = ""
				r.Email = "nope"
			},
			wantErr: map[string]string{
				"fullName":    "Full name is required",
				"birthDate":   "Birth date must be a valid date (YYYY-MM-DD)",
				"cityOfBirth": "City of birth is required",
				"email":       "Email is invalid",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validAuthorInput()
			tt.mutate(&input)

			err := input.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			require.Len(t, errs, len(tt.wantErr))
			for field, msg := range tt.wantErr {
				require.Contains(t, errs, field)
				assert.Equal(t, msg, errs[field].Error())
			}
		})
	}
}

// A field's rule chain stops at the first failure: an empty email reports
// only the required violation, not the format one on top.
func TestAuthorInputValidateShortCircuitsWithinField(t *testing.T) {
	input := validAuthorInput()
	input.Email = ""

	err := input.Validate()

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "Email is required", errs["email"].Error())
}
