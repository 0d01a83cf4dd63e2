package server_test

import (
	"testing"
	"time"

	"reach-estimator/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ReadTimeout(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{"Configured", 5, 5 * time.Second},
		{"Zero", 0, 30 * time.Second},
		{"Negative", -1, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{ReadTimeoutSeconds: tt.seconds}
			assert.Equal(t, tt.want, c.ReadTimeout())
		})
	}
}

func TestConfig_Address(t *testing.T) {
	assert.Equal(t, ":8080", server.Config{Port: "8080"}.Address())
}
