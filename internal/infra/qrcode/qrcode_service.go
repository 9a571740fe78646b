package qrcode

import (
	"fmt"
	"net/url"

	"verdant/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

// GeneratePaymentQR renders a UPI payment URI as a PNG QR code.
// The URI follows the upi://pay deep link format understood by UPI apps.
func (s *qrcodeService) GeneratePaymentQR(payeeAddress, payeeName string, amount float64, note string) ([]byte, error) {
	if payeeAddress == "" {
		return nil, fmt.Errorf("payee address is required")
	}

	params := url.Values{}
	params.Set("pa", payeeAddress)
	params.Set("pn", payeeName)
	params.Set("am", fmt.Sprintf("%.2f", amount))
	params.Set("cu", "INR")
	if note != "" {
		params.Set("tn", note)
	}

	uri := "upi://pay?" + params.Encode()

	qrCode, err := qrcode.New(uri, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
