package booking

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"

	"cruisedesk/internal/models"

	"github.com/skip2/go-qrcode"
)

// ConfirmationGenerator produces a QR image of the booking, with the
// payload encrypted so only the agency can read it back.
type ConfirmationGenerator struct {
	secret []byte
}

func NewConfirmationGenerator(secret string) *ConfirmationGenerator {
	hashed := sha256.Sum256([]byte(secret)) // normalize to 32 bytes
	return &ConfirmationGenerator{secret: hashed[:]}
}

type confirmationPayload struct {
	Reference    string  `json:"reference"`
	CruiseID     int64   `json:"cruise_id"`
	CustomerName string  `json:"customer_name"`
	Seats        int     `json:"seats"`
	Total        float64 `json:"total"`
}

// GenerateQR returns a PNG-encoded QR code for the booking confirmation.
func (g *ConfirmationGenerator) GenerateQR(booking *models.Booking) ([]byte, error) {
	data, err := json.Marshal(confirmationPayload{
		Reference:    booking.Reference,
		CruiseID:     booking.CruiseID,
		CustomerName: booking.CustomerName,
		Seats:        booking.Seats,
		Total:        booking.Total(),
	})
	if err != nil {
		return nil, err
	}

	encrypted, err := encryptAES(data, g.secret)
	if err != nil {
		return nil, err
	}

	return qrcode.Encode(encrypted, qrcode.Medium, 256)
}

func encryptAES(data []byte, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	ciphertext := make([]byte, aes.BlockSize+len(data))
	iv := ciphertext[:aes.BlockSize]

	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", err
	}

	stream := cipher.NewCFBEncrypter(block, iv)
	stream.XORKeyStream(ciphertext[aes.BlockSize:], data)

	return base64.URLEncoding.EncodeToString(ciphertext), nil
}
