package publisher

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validPublisherInput() PublisherInput {
	return PublisherInput{
		Name:                  "Secker & Warburg",
		CorrespondenceAddress: "7 John Street, London",
		Phone:                 "+44 20 7946 0000",
		Email:                 "contact@seckerwarburg.example.com",
		MaxBooksRegistered:    intPtr(500),
	}
}

func TestPublisherInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PublisherInput)
		wantErr map[string]string
	}{
		{
			name:    "valid input",
			mutate:  func(r *PublisherInput) {},
			wantErr: nil,
		},
		{
			name:    "max books of one is the lower bound",
			mutate:  func(r *PublisherInput) { r.MaxBooksRegistered = intPtr(1) },
			wantErr: nil,
		},
		{
			name:    "missing name",
			mutate:  func(r *PublisherInput) { r.Name = "" },
			wantErr: map[string]string{"name": "Name is required"},
		},
		{
			name:    "missing address",
			mutate:  func(r *PublisherInput) { r.CorrespondenceAddress = "" },
			wantErr: map[string]string{"correspondenceAddress": "The correspondence address is mandatory"},
		},
		{
			name:    "missing phone",
			mutate:  func(r *PublisherInput) { r.Phone = "" },
			wantErr: map[string]string{"phone": "The phone number is required"},
		},
		{
			name:    "malformed email",
			mutate:  func(r *PublisherInput) { r.Email = "at-sign-missing" },
			wantErr: map[string]string{"email": "Email is invalid"},
		},
		{
			name:    "absent max books",
			mutate:  func(r *PublisherInput) { r.MaxBooksRegistered = nil },
			wantErr: map[string]string{"maxBooksRegistered": "The maximum number of books registered is required"},
		},
		{
			name:    "zero max books",
			mutate:  func(r *PublisherInput) { r.MaxBooksRegistered = intPtr(0) },
			wantErr: map[string]string{"maxBooksRegistered": "Maximum books registered must be a positive integer"},
		},
		{
			name:    "negative max books",
			mutate:  func(r *PublisherInput) { r.MaxBooksRegistered = intPtr(-5) },
			wantErr: map[string]string{"maxBooksRegistered": "Maximum books registered must be a positive integer"},
		},
		{
			name: "all violations reported together",
			mutate: func(r *PublisherInput) {
				r.Name = ""
				r.CorrespondenceAddress = ""
				r.Phone = ""
				r.Email = "bad"
				r.MaxBooksRegistered = intPtr(0)
			},
			wantErr: map[string]string{
				"name":                  "Name is required",
				"correspondenceAddress": "The correspondence address is mandatory",
				"phone":                 "The phone number is required",
				"email":                 "Email is invalid",
				"maxBooksRegistered":    "Maximum books registered must be a positive integer",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validPublisherInput()
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
