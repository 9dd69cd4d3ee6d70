package estimates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/layerbylayersg/slicer-estimate-api/internal/download"
)

// Default print parameters applied when the request omits them.
const (
	DefaultMaterial = "PLA"
	DefaultQuality  = "standard"
)

// EstimateCommand contains the data needed to produce an estimate.
type EstimateCommand struct {
	FileURL  string `json:"file_url"`
	Material string `json:"material"`
	Quality  string `json:"quality"`
	Supports bool   `json:"supports"`
	Copies   int    `json:"copies"`
}

// DecodeEstimateCommand parses a request body that is either a JSON object
// or a bare JSON string holding only the model URL.
func DecodeEstimateCommand(r io.Reader) (EstimateCommand, error) {
	var cmd EstimateCommand

	data, err := io.ReadAll(r)
	if err != nil {
		return cmd, fmt.Errorf("read request body: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return cmd, fmt.Errorf("empty request body")
	}

	if trimmed[0] == '"' {
		var rawURL string
		if err := json.Unmarshal(trimmed, &rawURL); err != nil {
			return cmd, fmt.Errorf("decode url string: %w", err)
		}
		cmd.FileURL = rawURL
		return cmd, nil
	}

	if err := json.Unmarshal(trimmed, &cmd); err != nil {
		return cmd, fmt.Errorf("decode request: %w", err)
	}

	return cmd, nil
}

// Normalize applies defaults and floors the copy count at one.
func (c *EstimateCommand) Normalize() {
	if c.Material == "" {
		c.Material = DefaultMaterial
	}
	if c.Quality == "" {
		c.Quality = DefaultQuality
	}
	if c.Copies < 1 {
		c.Copies = 1
	}
}

// Validate checks the model URL and returns the model file name.
func (c *EstimateCommand) Validate() (string, error) {
	if c.FileURL == "" {
		return "", fmt.Errorf("file_url is required")
	}
	return download.FileName(c.FileURL)
}
