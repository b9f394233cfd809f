package server

import (
	"bytes"
	"cmp"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gen2brain/webp"
	"github.com/labstack/echo/v4"

	"athena/pkg/prompt"
	"athena/pkg/utils"
)

const coverFailureMsg = "Não foi possível gerar a imagem. Tente novamente com uma descrição diferente."

// CoverRequest is the manual cover form.
type CoverRequest struct {
	Mode   string `json:"mode"` // full | image | variation
	Title  string `json:"title"`
	Author string `json:"author"`
	Quote  string `json:"quote"`
	Detail string `json:"detail"`
	Style  string `json:"style"`
}

// POST /api/cover
func (s *Server) handlePostCover(c echo.Context) error {
	var req CoverRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	mode := prompt.CoverMode(req.Mode)
	switch mode {
	case prompt.CoverFull, prompt.CoverImage, prompt.CoverVariation:
	default:
		mode = prompt.CoverFull
	}
	out := s.generateCover(c.Request().Context(), mode, prompt.CoverSpec{
		Title:   req.Title,
		Author:  req.Author,
		Quote:   req.Quote,
		Details: req.Detail,
		Style:   req.Style,
	})
	return c.JSON(http.StatusOK, out)
}

// generateCover builds the image prompt, reusing a cached cover when the
// same title/style/mode was rendered before.
func (s *Server) generateCover(ctx context.Context, mode prompt.CoverMode, spec prompt.CoverSpec) Outcome {
	key := fmt.Sprintf("%s-%s-%s.webp",
		utils.SanitizeFilename(spec.Title),
		utils.SanitizeFilename(cmp.Or(spec.Style, prompt.DefaultCoverStyle)),
		mode)
	path := filepath.Join(s.CoverDir, key)

	if utils.Exists(path) {
		if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
			return coverOutcome(spec.Title, data)
		}
	}

	img := s.Gateway.GenerateImage(ctx, prompt.BuildCover(mode, spec))
	if img == nil {
		return Outcome{Kind: OutcomeModal, Title: "Erro", Content: coverFailureMsg}
	}

	data, err := encodeCoverWebP(img.Data)
	if err != nil {
		log.Error("cover encode failed, serving raw bytes", "error", err)
		return coverOutcomeRaw(spec.Title, img.MIMEType, img.Data)
	}
	if err := os.MkdirAll(s.CoverDir, 0755); err == nil {
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Warn("failed caching cover", "path", path, "error", err)
		}
	}
	return coverOutcome(spec.Title, data)
}

// encodeCoverWebP converts the backend's image bytes (usually PNG) into
// WebP for the disk cache.
func encodeCoverWebP(raw []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		var err2 error
		img, _, err2 = image.Decode(bytes.NewReader(raw))
		if err2 != nil {
			return nil, fmt.Errorf("decoding cover image (png: %v, generic: %v)", err, err2)
		}
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, webp.Options{Lossless: false, Quality: 100}); err != nil {
		return nil, fmt.Errorf("encoding webp: %w", err)
	}
	return buf.Bytes(), nil
}

func coverOutcome(title string, webpData []byte) Outcome {
	return Outcome{
		Kind:  OutcomeCover,
		Title: title,
		Image: "data:image/webp;base64," + base64.StdEncoding.EncodeToString(webpData),
	}
}

func coverOutcomeRaw(title, mimeType string, data []byte) Outcome {
	return Outcome{
		Kind:  OutcomeCover,
		Title: title,
		Image: fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)),
	}
}
