package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+1 650-253-0000", FormatPhone("(650) 253-0000", ""))
	assert.Equal(t, "+1 650-253-0000", FormatPhone("+1 6502530000", "GB"))
	assert.Equal(t, "+44 20 7031 3000", FormatPhone("020 7031 3000", "GB"))
	assert.Equal(t, "ext 12", FormatPhone("  ext 12 ", ""))
	assert.Equal(t, "", FormatPhone("   ", "US"))
}
