package service

// QRCodeService defines the interface for QR code rendering.
type QRCodeService interface {
	// GeneratePNG renders the given content (an otpauth:// URL) as a PNG.
	GeneratePNG(content string) ([]byte, error)
}
