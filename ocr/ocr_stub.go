//go:build !ocr

// Package ocr provides OCR (Optical Character Recognition) for rendered
// page images.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All recognition functions return ErrOCRNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
package ocr

import "image"

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func New(config Config) (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// Recognize returns an error indicating OCR support is not enabled.
func (c *Client) Recognize(img image.Image) (Result, error) {
	return Result{}, ErrOCRNotEnabled
}

// RecognizeBytes returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeBytes(imageData []byte) (Result, error) {
	return Result{}, ErrOCRNotEnabled
}

// SetVariable returns an error indicating OCR support is not enabled.
func (c *Client) SetVariable(name, value string) error {
	return ErrOCRNotEnabled
}

// Version reports that no engine is compiled in.
func (c *Client) Version() string {
	return "disabled"
}
