package table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRPayload(t *testing.T) {
	assert.Equal(t, "https://kafe.example/kopi-kenangan/order/t-1",
		QRPayload("https://kafe.example", "kopi-kenangan", "t-1"))
	assert.Equal(t, "https://kafe.example/kopi-kenangan/order/t-1",
		QRPayload("https://kafe.example/", "kopi-kenangan", "t-1"))
}

func TestQRCodePNG(t *testing.T) {
	png, err := QRCodePNG(QRPayload("https://kafe.example", "kopi", "t-1"))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
