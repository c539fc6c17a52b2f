package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the order's bill page as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) BillURL(orderID string) string {
	return fmt.Sprintf("%s/bill.html?order_id=%s", strings.TrimRight(g.BaseURL, "/"), url.QueryEscape(orderID))
}

func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	return qrcode.Encode(g.BillURL(orderID), qrcode.Medium, 256)
}

var _ QRGenerator = DefaultQRGenerator{}
