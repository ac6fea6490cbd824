package pdf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/internal/usecase/interfaces"
)

var ErrRendererNotConfigured = errors.New("pdf renderer url not configured")

// maxPDFBytes bounds what is read back from the renderer.
const maxPDFBytes = 20 << 20

// renderPayload is the body posted to the renderer.
type renderPayload struct {
	RequestID int64             `json:"request_id"`
	Estimate  entities.Estimate `json:"estimate"`
}

// RendererClient posts estimates to an external HTML-to-PDF service and
// returns the rendered document.
type RendererClient struct {
	url    string
	client *http.Client
}

var _ interfaces.IEstimateRenderer = (*RendererClient)(nil)

func NewRendererClient(url string, timeout time.Duration) (*RendererClient, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrRendererNotConfigured
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RendererClient{url: url, client: &http.Client{Timeout: timeout}}, nil
}

func (c *RendererClient) Render(ctx context.Context, requestID int64, estimate entities.Estimate) ([]byte, error) {
	body, err := json.Marshal(renderPayload{RequestID: requestID, Estimate: estimate})
	if err != nil {
		return nil, fmt.Errorf("encode estimate: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[estimate][pdf] render request failed request_id=%d err=%v", requestID, err)
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[estimate][pdf] renderer returned status=%d request_id=%d", resp.StatusCode, requestID)
		return nil, fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	pdf, err := io.ReadAll(io.LimitReader(resp.Body, maxPDFBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(pdf) > maxPDFBytes {
		return nil, fmt.Errorf("rendered document exceeds %d bytes", maxPDFBytes)
	}
	if len(pdf) == 0 {
		return nil, errors.New("renderer returned empty document")
	}
	return pdf, nil
}
