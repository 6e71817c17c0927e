// Package links builds the public page URLs of a meet and the printable QR
// code officials scan to reach the submit page.
package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/festy23/swimdq/internal/meet/model"
)

const (
	// DefaultQRCodeSize is the PNG edge length used when none is requested.
	DefaultQRCodeSize = 256
	// MinQRCodeSize is the smallest accepted PNG edge length.
	MinQRCodeSize = 64
	// MaxQRCodeSize is the largest accepted PNG edge length.
	MaxQRCodeSize = 1024
)

type encodeFunc func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// Builder derives meet URLs from the application base URL.
type Builder struct {
	baseURL string
	encode  encodeFunc
}

// New creates a link builder rooted at baseURL.
func New(baseURL string) *Builder {
	return &Builder{
		baseURL: strings.TrimRight(baseURL, "/"),
		encode:  qrcode.Encode,
	}
}

// SubmitURL returns the DQ submission page of a meet.
func (b *Builder) SubmitURL(meetID string) string {
	return b.page("submit", meetID)
}

// ReviewURL returns the review page of a meet.
func (b *Builder) ReviewURL(meetID string) string {
	return b.page("review", meetID)
}

// ReportURL returns the report page of a meet.
func (b *Builder) ReportURL(meetID string) string {
	return b.page("report", meetID)
}

func (b *Builder) page(kind, meetID string) string {
	return fmt.Sprintf("%s/%s/%s", b.baseURL, kind, url.PathEscape(meetID))
}

// For returns the links shown for a meet. Closed meets only expose the report.
func (b *Builder) For(m *model.Meet) model.Links {
	links := model.Links{Report: b.ReportURL(m.ID)}
	if m.IsActive() {
		links.Submit = b.SubmitURL(m.ID)
		links.Review = b.ReviewURL(m.ID)
	}
	return links
}

// SubmitQRCode renders the submit URL of a meet as a PNG of size x size pixels.
func (b *Builder) SubmitQRCode(meetID string, size int) ([]byte, error) {
	if size < MinQRCodeSize || size > MaxQRCodeSize {
		return nil, fmt.Errorf("%w: %d (must be %d..%d)", model.ErrInvalidQRCodeSize, size, MinQRCodeSize, MaxQRCodeSize)
	}

	png, err := b.encode(b.SubmitURL(meetID), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}
