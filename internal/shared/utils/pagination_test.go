package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageOffset(t *testing.T) {
	tests := []struct {
		name string
		page int
		want int
	}{
		{"first page starts at zero", 1, 0},
		{"second page skips one page of rows", 2, 12},
		{"fifth page", 5, 48},
		{"zero clamps to first page", 0, 0},
		{"negative clamps to first page", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageOffset(tt.page))
		})
	}
}

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, 1, NormalizePage(0))
	assert.Equal(t, 1, NormalizePage(-10))
	assert.Equal(t, 1, NormalizePage(1))
	assert.Equal(t, 7, NormalizePage(7))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		want  int
	}{
		{"no records means no pages", 0, 0},
		{"single record", 1, 1},
		{"exactly one full page", 12, 1},
		{"one past a full page", 13, 2},
		{"several full pages", 36, 3},
		{"partial last page", 40, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total))
		})
	}
}
