//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) for rendered
// page images.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
	config Config
}

// New creates an OCR client with the given configuration.
// The client should be closed when no longer needed to release resources.
func New(config Config) (*Client, error) {
	client := gosseract.NewClient()
	c := &Client{client: client, config: config}
	if err := c.applyConfig(); err != nil {
		client.Close()
		return nil, err
	}
	return c, nil
}

func (c *Client) applyConfig() error {
	cfg := c.config
	if cfg.Language != "" {
		if err := c.client.SetLanguage(cfg.Language); err != nil {
			return fmt.Errorf("set language %q: %w", cfg.Language, err)
		}
	}
	if err := c.client.SetPageSegMode(gosseract.PageSegMode(cfg.PageSegMode)); err != nil {
		return fmt.Errorf("set page segmentation mode: %w", err)
	}
	if cfg.Whitelist != "" {
		if err := c.client.SetWhitelist(cfg.Whitelist); err != nil {
			return fmt.Errorf("set character whitelist: %w", err)
		}
	}
	if cfg.PreserveInterwordSpaces {
		if err := c.client.SetVariable("preserve_interword_spaces", "1"); err != nil {
			return fmt.Errorf("set preserve_interword_spaces: %w", err)
		}
	}
	return nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Recognize performs OCR on a page image and returns the recognized text
// together with per-word confidence scores. Words Tesseract reports with a
// non-positive confidence sentinel are excluded from the result.
func (c *Client) Recognize(img image.Image) (Result, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Result{}, fmt.Errorf("encode page image: %w", err)
	}
	return c.RecognizeBytes(buf.Bytes())
}

// RecognizeBytes performs OCR on encoded image data (PNG, TIFF, JPEG, etc.).
func (c *Client) RecognizeBytes(imageData []byte) (Result, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return Result{}, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return Result{}, fmt.Errorf("OCR failed: %w", err)
	}

	result := Result{Text: text}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Text succeeded; treat confidence as unmeasured for this page.
		return result, nil
	}
	for _, box := range boxes {
		if box.Confidence <= 0 {
			continue
		}
		result.WordConfidences = append(result.WordConfidences, box.Confidence)
	}
	return result, nil
}

// SetVariable passes an engine-specific variable straight through to
// Tesseract (e.g. "user_defined_dpi").
func (c *Client) SetVariable(name, value string) error {
	return c.client.SetVariable(gosseract.SettableVariable(name), value)
}

// Version reports the Tesseract version string, useful in diagnostics.
func (c *Client) Version() string {
	return c.client.Version()
}
