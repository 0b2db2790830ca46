package sources_test

import (
	"testing"

	"roster-hub/core/sources"

	"github.com/stretchr/testify/assert"
)

type tagged struct {
	ID    string `json:"id" validate:"required"`
	Grade int    `json:"grade,omitempty" validate:"omitempty,min=1,max=12"`
}

func TestValidateRecords(t *testing.T) {
	tests := []struct {
		name    string
		records []tagged
		msg     string
	}{
		{"Empty", nil, ""},
		{"Valid", []tagged{{ID: "a"}, {ID: "b", Grade: 5}}, ""},
		{"Missing", []tagged{{ID: "a"}, {Grade: 3}}, "src items: malformed payload: record 1: missing id"},
		{"OutOfRange", []tagged{{ID: "a", Grade: 13}}, "src items: malformed payload: record 0: grade failed max"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sources.ValidateRecords("src", "items", tt.records)
			if tt.msg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, sources.ErrMalformedPayload)
			assert.EqualError(t, err, tt.msg)
		})
	}
}
