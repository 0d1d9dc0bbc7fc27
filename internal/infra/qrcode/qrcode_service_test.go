package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"haven/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeServiceWith(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Non-positive size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeServiceWith(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateListingQR(t *testing.T) {
	svc := NewQRCodeServiceWith(256, "M")

	qrBytes, err := svc.GenerateListingQR("https://havenhop.example.com/listings/65f0c0ffee")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateListingQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeServiceWith(size, "M")

		qrBytes, err := svc.GenerateListingQR("https://havenhop.example.com/listings/1")
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(qrBytes))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

func TestQRCodeService_GenerateListingQR_EmptyURL(t *testing.T) {
	svc := NewQRCodeServiceWith(256, "M")

	_, err := svc.GenerateListingQR("")

	assert.Error(t, err)
}

func TestNewQRCodeService_FromConfig(t *testing.T) {
	cfg := &config.Config{}
	assert.NotNil(t, NewQRCodeService(cfg))

	cfg.QRCode = &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}
	qrBytes, err := NewQRCodeService(cfg).GenerateListingQR("https://havenhop.example.com/")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
