package commands

import (
	"context"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const qrUsageText = "📱 **QR Code Generator**\n\n" +
	"• `qr https://example.com` - Generate QR for URL\n" +
	"• `qr Hello World!` - Generate QR for text"

const qrErrorText = "❌ Error generating QR code. Please try again."

const qrImageSize = 512

func (h *Handler) cmdQRCode(ctx context.Context, chatID int64, text string) error {
	_, content := splitCommand(text)
	if content == "" {
		return h.deps.SendMessage(ctx, chatID, qrUsageText)
	}

	reply := fmt.Sprintf("📱 **QR Code Generated!**\n\n🔗 Content: `%s`", content)

	png, err := qrcode.Encode(content, qrcode.Medium, qrImageSize)
	if err != nil {
		h.deps.Logf("qr encode failed for %q: %v", content, err)
		return h.deps.SendMessage(ctx, chatID, qrErrorText)
	}

	if err := h.deps.SendPhotoMessage(ctx, chatID, reply, png); err != nil {
		// The text confirmation is the contract; the image is best effort.
		h.deps.Logf("qr photo delivery failed, sending text only: %v", err)
		return h.deps.SendMessage(ctx, chatID, reply)
	}
	return nil
}
