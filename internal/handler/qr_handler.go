package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mnakagawa/eatmap-backend-go/pkg/response"
	qrcode "github.com/skip2/go-qrcode"
)

// QRHandler serves a QR code image of the public page URL
type QRHandler struct {
	baseURL string
	size    int
}

// NewQRHandler creates a new QR handler. An empty baseURL disables the
// endpoint.
func NewQRHandler(baseURL string) *QRHandler {
	return &QRHandler{baseURL: baseURL, size: 256}
}

// GetQR renders the configured page URL as a PNG QR code
// GET /api/v1/qr
func (h *QRHandler) GetQR(c *gin.Context) {
	if h.baseURL == "" {
		response.NotFound(c, "APP_BASE_URL is not configured")
		return
	}

	png, err := qrcode.Encode(h.baseURL, qrcode.Medium, h.size)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
