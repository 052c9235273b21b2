package utils

import (
	"math/rand"
	"time"

	"github.com/kiprono589/savanna_tours/models"
	"gorm.io/gorm"
)

const referenceSuffixLength = 8
const referencePrefix = "SAF-"
const letterBytes = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewReferenceCode returns a booking reference like SAF-7K2M9QTD. Ambiguous
// characters (0/O, 1/I) are excluded from the alphabet.
func NewReferenceCode() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	b := make([]byte, referenceSuffixLength)
	for i := range b {
		b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
	}
	return referencePrefix + string(b)
}

// GenerateUniqueBookingReference retries until the code is unused.
func GenerateUniqueBookingReference(tx *gorm.DB) (string, error) {
	for {
		code := NewReferenceCode()

		var booking models.Booking
		err := tx.Where("reference = ?", code).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
