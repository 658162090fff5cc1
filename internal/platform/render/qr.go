package render

import (
	"encoding/base64"

	"github.com/skip2/go-qrcode"
)

// qrDataURI encodes value as a QR code PNG and returns it as a data URI
// suitable for an img src attribute.
func qrDataURI(value string) (string, error) {
	png, err := qrcode.Encode(value, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
