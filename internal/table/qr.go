package table

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

// QRPayload is the URL printed on a table. Scanning it opens the ordering
// page of that table.
func QRPayload(origin, slug, tableID string) string {
	return strings.TrimRight(origin, "/") + "/" + slug + "/order/" + tableID
}

// QRCodePNG renders payload as a square PNG.
func QRCodePNG(payload string) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.Medium, qrSize)
}
