// Package assets loads the static images embedded into offer documents:
// messenger QR codes and the company logo.
package assets

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"path/filepath"

	"github.com/disintegration/imaging"

	"cartonquote/internal/quote"
)

// Default file names looked up inside the static directory.
const (
	telegramQRFile = "telegram_qr.png"
	whatsappQRFile = "whatsapp_qr.png"
	logoFile       = "logo.png"
)

// Target pixel sizes for embedded images; documents stay small and the
// PDF renderer never has to downscale.
const (
	qrSizePx     = 160
	logoWidthPx  = 240
	logoHeightPx = 120
)

// LoadRefs loads and encodes the document assets from dir. A missing or
// unreadable file degrades to an empty ref: the renderer omits the block.
func LoadRefs(dir string) quote.AssetRefs {
	return quote.AssetRefs{
		TelegramQR: loadSquare(filepath.Join(dir, telegramQRFile), qrSizePx),
		WhatsAppQR: loadSquare(filepath.Join(dir, whatsappQRFile), qrSizePx),
		Logo:       loadFit(filepath.Join(dir, logoFile), logoWidthPx, logoHeightPx),
	}
}

func loadSquare(path string, size int) string {
	img, err := imaging.Open(path)
	if err != nil {
		return ""
	}
	return encode(imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos))
}

func loadFit(path string, w, h int) string {
	img, err := imaging.Open(path)
	if err != nil {
		return ""
	}
	return encode(imaging.Fit(img, w, h, imaging.Lanczos))
}

// encode returns the image as a base64 PNG payload suitable for a data URI.
func encode(img image.Image) string {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
