package service

// QRCodeService renders QR codes for sharing listings.
type QRCodeService interface {
	// GenerateListingQR encodes the public URL of a listing as a PNG.
	GenerateListingQR(listingURL string) ([]byte, error)
}
