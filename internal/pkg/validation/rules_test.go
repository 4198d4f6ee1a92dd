package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"johndoe@college.edu",
		"alice.smith+x@college.edu",
		"bob_johnson@sub.college.edu",
	}
	for _, email := range valid {
		assert.True(t, CompiledPatterns.Email.MatchString(email), email)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"@college.edu",
		"johndoe@",
		"johndoe@college",
	}
	for _, email := range invalid {
		assert.False(t, CompiledPatterns.Email.MatchString(email), email)
	}
}

func TestValidAttendance(t *testing.T) {
	assert.True(t, ValidAttendance(0))
	assert.True(t, ValidAttendance(89.5))
	assert.True(t, ValidAttendance(100))
	assert.False(t, ValidAttendance(-0.1))
	assert.False(t, ValidAttendance(100.1))
}

func TestStringValidation(t *testing.T) {
	assert.False(t, NewStringValidation("").Validate())
	assert.True(t, NewStringValidation("x").WithRequired(false).Validate())
	assert.False(t, NewStringValidation("a").WithMinLength(2).Validate())
	assert.True(t, NewStringValidation("ab").WithMinLength(2).WithMaxLength(3).Validate())
	assert.False(t, NewStringValidation("abcd").WithMaxLength(3).Validate())
	assert.True(t, NewStringValidation("johndoe@college.edu").WithPattern(CompiledPatterns.Email).Validate())
	assert.False(t, NewStringValidation("nope").WithPattern(CompiledPatterns.Email).Validate())
}

func TestNumericValidation(t *testing.T) {
	assert.True(t, NewNumericValidation(2).WithMin(1).WithMax(8).Validate())
	assert.True(t, NewNumericValidation(1).WithMin(1).WithMax(8).Validate())
	assert.True(t, NewNumericValidation(8).WithMin(1).WithMax(8).Validate())
	assert.False(t, NewNumericValidation(-1).WithMin(1).WithMax(8).Validate())
	assert.False(t, NewNumericValidation(9).WithMin(1).WithMax(8).Validate())
	assert.True(t, NewNumericValidation(42).Validate())
}
