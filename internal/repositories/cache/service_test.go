package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	tests := []struct {
		entity  string
		keyType string
		value   interface{}
		want    string
	}{
		{"ai", "reply", "9f86d081", "ai:reply:9f86d081"},
		{"company", "id", 101, "company:id:101"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateKey(tt.entity, tt.keyType, tt.value))
		})
	}
}
