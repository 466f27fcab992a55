package utils

import (
	"github.com/skip2/go-qrcode"
)

// GenerateQRCode sinh ảnh PNG chứa mã đặt phòng, lễ tân quét khi khách đến
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
