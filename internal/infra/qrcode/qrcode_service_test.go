package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GeneratePNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GeneratePNG("otpauth://totp/Dashboard%20BI:operador?secret=ABCDEF")
	require.NoError(t, err)

	// PNG magic header.
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GeneratePNG("conteudo-qualquer")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
