package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	ReservationCodeLength   = 6
	reservationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	ticketCodePrefix        = "TKT"
	ticketCodeSuffixLength  = 4
)

// RandomCodeGenerator draws reservation codes uniformly from [A-Z0-9]{6} and
// builds ticket codes as TKT-<reservation code>-<4 hex chars>.
type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() RandomCodeGenerator {
	return RandomCodeGenerator{}
}

func (RandomCodeGenerator) ReservationCode() (string, error) {
	alphabetSize := big.NewInt(int64(len(reservationCodeAlphabet)))
	code := make([]byte, ReservationCodeLength)

	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}

		code[i] = reservationCodeAlphabet[n.Int64()]
	}

	return string(code), nil
}

func (RandomCodeGenerator) TicketCode(reservationCode string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:ticketCodeSuffixLength])

	return fmt.Sprintf("%s-%s-%s", ticketCodePrefix, reservationCode, suffix), nil
}
