package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GeneratePaymentQR renders a UPI payment URI for the given payee, amount
	// and note as a PNG QR code.
	GeneratePaymentQR(payeeAddress, payeeName string, amount float64, note string) ([]byte, error)
}
