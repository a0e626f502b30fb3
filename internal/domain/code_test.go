package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	reservationCodeRgx = regexp.MustCompile(`^[A-Z0-9]{6}$`)
	ticketCodeRgx      = regexp.MustCompile(`^TKT-AB12CD-[0-9A-F]{4}$`)
)

func TestRandomCodeGenerator(t *testing.T) {
	gen := NewRandomCodeGenerator()

	seen := make(map[string]bool)
	for range 200 {
		code, err := gen.ReservationCode()
		require.NoError(t, err)
		assert.Regexp(t, reservationCodeRgx, code)
		seen[code] = true
	}

	// 36^6 codes; 200 draws colliding more than once would point at a broken source.
	assert.GreaterOrEqual(t, len(seen), 199)

	ticketCode, err := gen.TicketCode("AB12CD")
	require.NoError(t, err)
	assert.Regexp(t, ticketCodeRgx, ticketCode)
}
