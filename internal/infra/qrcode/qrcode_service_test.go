package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeService_GeneratePaymentQR_ReturnsPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GeneratePaymentQR("verdant@upi", "verdant", 2500, "Bonsai")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestQRCodeService_GeneratePaymentQR_RequiresPayeeAddress(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GeneratePaymentQR("", "verdant", 2500, "Bonsai")
	assert.Nil(t, png)
	assert.Error(t, err)
}

func TestQRCodeService_GeneratePaymentQR_NoteIsOptional(t *testing.T) {
	svc := NewQRCodeService(256, "H")

	png, err := svc.GeneratePaymentQR("verdant@upi", "verdant", 100, "")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GeneratePaymentQR("verdant@upi", "verdant", 100, "note")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
