package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestID_SameInputSameOutput(t *testing.T) {
	a := ID("actor=1,position_index=3,build_type=77")
	b := ID("actor=1,position_index=3,build_type=77")
	assert.Equal(t, a, b)
}

func TestID_DifferentInputDifferentOutput(t *testing.T) {
	a := ID("actor=1,position_index=3,build_type=77")
	b := ID("actor=1,position_index=3,build_type=78")
	assert.NotEqual(t, a, b)
}
