package helpers

import (
	"encoding/base64"
	"fmt"
	"os"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateTableQR renders the table's menu URL as a PNG and returns it
// base64-encoded. Callers treat failure as non-critical: a table without a
// QR artifact is still a valid table.
func GenerateTableQR(tableId string) (string, error) {
	base := os.Getenv("MENU_BASE_URL")
	if base == "" {
		base = "http://localhost:3000/menu"
	}
	png, err := qrcode.Encode(fmt.Sprintf("%s/%s", base, tableId), qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
