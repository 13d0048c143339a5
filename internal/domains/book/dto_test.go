package book

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validBookInput() BookInput {
	return BookInput{
		Title:           "Nineteen Eighty-Four",
		Year:            intPtr(1949),
		Genre:           "Dystopian fiction",
		PageCount:       intPtr(328),
		Author:          "3f6f9c76-6f77-4a29-b6ae-0af96c2a0a01",
		Publisher:       "9d7e1a2b-3c4d-4e5f-8a9b-0c1d2e3f4a5b",
		BookCover:       "https://covers.example.com/1984.jpg",
		BookDescription: "A novel about surveillance and control.",
	}
}

func TestBookInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BookInput)
		wantErr map[string]string
	}{
		{
			name:    "valid input",
			mutate:  func(r *BookInput) {},
			wantErr: nil,
		},
		{
			name:    "cover and description are optional",
			mutate:  func(r *BookInput) { r.BookCover = ""; r.BookDescription = "" },
			wantErr: nil,
		},
		{
			name:    "year lower bound accepted",
			mutate:  func(r *BookInput) { r.Year = intPtr(1000) },
			wantErr: nil,
		},
		{
			name:    "year upper bound accepted",
			mutate:  func(r *BookInput) { r.Year = intPtr(9999) },
			wantErr: nil,
		},
		{
			name:    "year below range",
			mutate:  func(r *BookInput) { r.Year = intPtr(999) },
			wantErr: map[string]string{"year": "Year must be a 4-digit number between 1000 and 9999"},
		},
		{
			name:    "year zero rejected",
			mutate:  func(r *BookInput) { r.Year = intPtr(0) },
			wantErr: map[string]string{"year": "Year must be a 4-digit number between 1000 and 9999"},
		},
		{
			name:    "year above range",
			mutate:  func(r *BookInput) { r.Year = intPtr(10000) },
			wantErr: map[string]string{"year": "Year must be a 4-digit number between 1000 and 9999"},
		},
		{
			name:    "absent year",
			mutate:  func(r *BookInput) { r.Year = nil },
			wantErr: map[string]string{"year": "Year is required"},
		},
		{
			name:    "single page accepted",
			mutate:  func(r *BookInput) { r.PageCount = intPtr(1) },
			wantErr: nil,
		},
		{
			name:    "zero pages rejected",
			mutate:  func(r *BookInput) { r.PageCount = intPtr(0) },
			wantErr: map[string]string{"pageCount": "Number of pages must be a positive integer"},
		},
		{
			name:    "absent page count",
			mutate:  func(r *BookInput) { r.PageCount = nil },
			wantErr: map[string]string{"pageCount": "Number of pages is required"},
		},
		{
			name:    "missing title",
			mutate:  func(r *BookInput) { r.Title = "" },
			wantErr: map[string]string{"title": "Title is required"},
		},
		{
			name:    "missing genre",
			mutate:  func(r *BookInput) { r.Genre = "" },
			wantErr: map[string]string{"genre": "Genre is required"},
		},
		{
			name:    "author id not a uuid",
			mutate:  func(r *BookInput) { r.Author = "orwell" },
			wantErr: map[string]string{"author": "Invalid author ID"},
		},
		{
			name:    "publisher id not a uuid",
			mutate:  func(r *BookInput) { r.Publisher = "12345" },
			wantErr: map[string]string{"publisher": "Invalid publisher ID"},
		},
		{
			name:    "missing author id",
			mutate:  func(r *BookInput) { r.Author = "" },
			wantErr: map[string]string{"author": "Author ID is required"},
		},
		{
			name: "all violations reported together",
			mutate: func(r *BookInput) {
				r.Title = ""
				r.Year = intPtr(42)
				r.Genre = ""
				r.PageCount = intPtr(-1)
				r.Author = "not-a-uuid"
				r.Publisher = ""
			},
			wantErr: map[string]string{
				"title":     "Title is required",
				"year":      "Year must be a 4-digit number between 1000 and 9999",
				"genre":     "Genre is required",
				"pageCount": "Number of pages must be a positive integer",
				"author":    "Invalid author ID",
				"publisher": "Publisher ID is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validBookInput()
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

func TestSearchFilterEmpty(t *testing.T) {
	assert.True(t, SearchFilter{}.Empty())
	assert.False(t, SearchFilter{Title: "Nineteen Eighty-Four"}.Empty())
	assert.False(t, SearchFilter{AuthorName: "George Orwell"}.Empty())
	assert.False(t, SearchFilter{PublisherName: "Secker & Warburg"}.Empty())
}

func TestReferenceError(t *testing.T) {
	both := &ReferenceError{AuthorMissing: true, PublisherMissing: true}
	assert.Equal(t, "the author and publisher do not exist", both.Error())
	assert.Equal(t, []string{"author", "publisher"}, both.MissingRefs())

	authorOnly := &ReferenceError{AuthorMissing: true}
	assert.Equal(t, "the author does not exist", authorOnly.Error())
	assert.Equal(t, []string{"author"}, authorOnly.MissingRefs())

	publisherOnly := &ReferenceError{PublisherMissing: true}
	assert.Equal(t, "the publisher does not exist", publisherOnly.Error())
	assert.Equal(t, []string{"publisher"}, publisherOnly.MissingRefs())
}
