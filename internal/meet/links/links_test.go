package links

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/swimdq/internal/meet/model"
)

func TestBuilder_URLs(t *testing.T) {
	b := New("https://dq.example.org/")

	assert.Equal(t, "https://dq.example.org/submit/m1", b.SubmitURL("m1"))
	assert.Equal(t, "https://dq.example.org/review/m1", b.ReviewURL("m1"))
	assert.Equal(t, "https://dq.example.org/report/m1", b.ReportURL("m1"))
}

func TestBuilder_EscapesMeetID(t *testing.T) {
	b := New("http://localhost:8080")

	assert.Equal(t, "http://localhost:8080/submit/a%2Fb", b.SubmitURL("a/b"))
}

func TestBuilder_For(t *testing.T) {
	b := New("http://localhost:8080")

	t.Run("active meet exposes every page", func(t *testing.T) {
		links := b.For(&model.Meet{ID: "m1", Status: model.StatusActive})

		assert.Equal(t, model.Links{
			Submit: "http://localhost:8080/submit/m1",
			Review: "http://localhost:8080/review/m1",
			Report: "http://localhost:8080/report/m1",
		}, links)
	})

	t.Run("closed meet only exposes report", func(t *testing.T) {
		links := b.For(&model.Meet{ID: "m1", Status: model.StatusClosed})

		assert.Empty(t, links.Submit)
		assert.Empty(t, links.Review)
		assert.Equal(t, "http://localhost:8080/report/m1", links.Report)
	})
}

func TestBuilder_SubmitQRCode(t *testing.T) {
	t.Run("renders png of requested size", func(t *testing.T) {
		b := New("http://localhost:8080")

		data, err := b.SubmitQRCode("m1", DefaultQRCodeSize)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, DefaultQRCodeSize, img.Bounds().Dx())
		assert.Equal(t, DefaultQRCodeSize, img.Bounds().Dy())
	})

	t.Run("encodes submit url", func(t *testing.T) {
		b := New("http://localhost:8080")
		var gotContent string
		var gotLevel qrcode.RecoveryLevel
		b.encode = func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
			gotContent = content
			gotLevel = level
			return []byte("png"), nil
		}

		data, err := b.SubmitQRCode("m1", 128)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), data)
		assert.Equal(t, "http://localhost:8080/submit/m1", gotContent)
		assert.Equal(t, qrcode.Medium, gotLevel)
	})

	t.Run("size out of range", func(t *testing.T) {
		b := New("http://localhost:8080")

		for _, size := range []int{0, MinQRCodeSize - 1, MaxQRCodeSize + 1} {
			_, err := b.SubmitQRCode("m1", size)
			assert.ErrorIs(t, err, model.ErrInvalidQRCodeSize)
		}
	})

	t.Run("encoder failure is wrapped", func(t *testing.T) {
		b := New("http://localhost:8080")
		b.encode = func(string, qrcode.RecoveryLevel, int) ([]byte, error) {
			return nil, errors.New("boom")
		}

		_, err := b.SubmitQRCode("m1", 128)
		assert.ErrorContains(t, err, "failed to encode qr code")
	})
}
