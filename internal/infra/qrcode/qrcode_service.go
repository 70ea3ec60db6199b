// Package qrcode renders QR codes for two-factor enrollment.
package qrcode

import (
	"github.com/skip2/go-qrcode"

	"dashbi/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePNG renders the given content (an otpauth:// URL) as a PNG.
func (s *qrcodeService) GeneratePNG(content string) ([]byte, error) {
	return qrcode.Encode(content, s.errorCorrectionLevel, s.size)
}
