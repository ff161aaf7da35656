package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	kl := time.FixedZone("MYT", 8*60*60)

	tests := []struct {
		name     string
		input    string
		loc      *time.Location
		expected time.Time
		wantErr  bool
	}{
		{name: "Valid date", input: "2026-01-27", expected: time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC)},
		{name: "In location", input: "2026-01-27", loc: kl, expected: time.Date(2026, 1, 26, 16, 0, 0, 0, time.UTC)},
		{name: "Invalid format", input: "27-01-2026", wantErr: true},
		{name: "Invalid day", input: "2026-01-32", wantErr: true},
		{name: "Empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input, tt.loc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s", got)
		})
	}
}
