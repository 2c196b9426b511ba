package services

import (
	"image/color"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QROptions struct {
	Content string
	Size    int
	FgColor string // Hex code e.g. "#000000"
	BgColor string // Hex code e.g. "#FFFFFF"
}

type QRService struct{}

func NewQRService() *QRService {
	return &QRService{}
}

// GeneratePNG renders a QR code for a tracking URL. The output for a given
// id never changes, which is what makes the redis cache in the handler safe.
func (s *QRService) GeneratePNG(opts QROptions) ([]byte, error) {
	qr, err := qrcode.New(opts.Content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	qr.ForegroundColor = parseHexColor(opts.FgColor, color.Black)
	qr.BackgroundColor = parseHexColor(opts.BgColor, color.White)

	size := opts.Size
	if size <= 0 {
		size = 256
	}

	return qr.PNG(size)
}

func parseHexColor(s string, defaultColor color.Color) color.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return defaultColor
	}

	hexToByte := func(c byte) byte {
		if c >= '0' && c <= '9' {
			return c - '0'
		}
		if c >= 'a' && c <= 'f' {
			return c - 'a' + 10
		}
		if c >= 'A' && c <= 'F' {
			return c - 'A' + 10
		}
		return 0
	}

	r := (hexToByte(s[0]) << 4) + hexToByte(s[1])
	g := (hexToByte(s[2]) << 4) + hexToByte(s[3])
	b := (hexToByte(s[4]) << 4) + hexToByte(s[5])

	return color.RGBA{R: r, G: g, B: b, A: 255}
}
