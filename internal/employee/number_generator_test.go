package employee_test

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"go-payroll/internal/employee"

	"github.com/stretchr/testify/assert"
)

func newGenerator(seed int64) *employee.NumberGenerator {
	return employee.NewNumberGenerator(rand.New(rand.NewSource(seed)))
}

func TestNumberGenerator_Format(t *testing.T) {
	gen := newGenerator(1)
	dob := time.Date(1994, time.May, 14, 0, 0, 0, 0, time.UTC)

	t.Run("full name", func(t *testing.T) {
		number := gen.Generate("Razak Ahmad", dob)
		assert.Regexp(t, regexp.MustCompile(`^RAZ-\d{5}-14MAY1994$`), number)
	})

	t.Run("short name padded with X", func(t *testing.T) {
		number := gen.Generate("Al", dob)
		assert.Regexp(t, regexp.MustCompile(`^ALX-\d{5}-14MAY1994$`), number)
	})

	t.Run("non-letter characters stripped", func(t *testing.T) {
		number := gen.Generate("o'brien 2nd", dob)
		assert.Regexp(t, regexp.MustCompile(`^OBR-\d{5}-14MAY1994$`), number)
	})

	t.Run("no letters at all", func(t *testing.T) {
		number := gen.Generate("42", dob)
		assert.Regexp(t, regexp.MustCompile(`^XXX-\d{5}-14MAY1994$`), number)
	})

	t.Run("date part follows birth date", func(t *testing.T) {
		number := gen.Generate("Razak Ahmad", time.Date(1990, time.January, 2, 0, 0, 0, 0, time.UTC))
		assert.Regexp(t, regexp.MustCompile(`^RAZ-\d{5}-02JAN1990$`), number)
	})
}

func TestNumberGenerator_SeededSourceIsDeterministic(t *testing.T) {
	dob := time.Date(1994, time.May, 14, 0, 0, 0, 0, time.UTC)

	first := newGenerator(42).Generate("Razak Ahmad", dob)
	second := newGenerator(42).Generate("Razak Ahmad", dob)

	assert.Equal(t, first, second)
}
