package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPassengerDetails(t *testing.T) {
	e := newTestExtractor()

	p, ok := e.ExtractPassengerDetails("Rahul Sharma, 1990-05-10, P1234567, Indian")
	require.True(t, ok)
	assert.Equal(t, "Rahul", p.FirstName)
	assert.Equal(t, "Sharma", p.LastName)
	assert.Equal(t, "1990-05-10", p.DateOfBirth)
	assert.Equal(t, "P1234567", p.PassportNumber)
	assert.Equal(t, "Indian", p.Nationality)
}

func TestExtractPassengerDetailsLenientDOB(t *testing.T) {
	e := newTestExtractor()

	p, ok := e.ExtractPassengerDetails("Anna Maria Lopez, 10-May-1990, X9876543, Spanish")
	require.True(t, ok)
	assert.Equal(t, "Anna", p.FirstName)
	assert.Equal(t, "Maria Lopez", p.LastName)
	assert.Equal(t, "1990-05-10", p.DateOfBirth)
}

func TestExtractPassengerDetailsRejects(t *testing.T) {
	e := newTestExtractor()

	cases := []string{
		"Rahul Sharma, 1990-05-10, P1234567",  // missing field
		"Rahul, 1990-05-10, P1234567, Indian", // single-token name
		"Rahul Sharma, someday, P1234567, Indian",
		"Rahul Sharma, 1990-05-10, , Indian",
		"Rahul Sharma, 1990-05-10, P1234567, ",
	}
	for _, msg := range cases {
		_, ok := e.ExtractPassengerDetails(msg)
		assert.False(t, ok, msg)
	}
}
