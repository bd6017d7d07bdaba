package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, DefaultHistoryLimit},
		{"negative uses default", -3, DefaultHistoryLimit},
		{"within range", 7, 7},
		{"at maximum", MaxHistoryLimit, MaxHistoryLimit},
		{"above maximum", MaxHistoryLimit + 1, MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampLimit(tt.limit))
		})
	}
}
