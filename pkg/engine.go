package pkg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultEngineURL = "http://127.0.0.1:5000/best-move"
	SearchDepth      = 3
)

var ErrEngineRequest = errors.New("engine request failed")

// EngineError describes one failed call to the move-search service.
type EngineError struct {
	Op     string
	Status int
	Err    error
}

func (e *EngineError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s: status %d: %v", ErrEngineRequest, e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrEngineRequest, e.Op, e.Err)
}

func (e *EngineError) Unwrap() []error {
	return []error{ErrEngineRequest, e.Err}
}

// Engine answers a position with the position after its reply.
type Engine interface {
	BestMove(ctx context.Context, fen string, depth int) (string, error)
}

type HTTPEngine struct {
	URL        string
	HTTPClient *http.Client
}

// NewHTTPEngine returns a client for the service at url. A zero timeout
// leaves requests unbounded.
func NewHTTPEngine(url string, timeout time.Duration) *HTTPEngine {
	return &HTTPEngine{
		URL: strings.TrimSpace(url),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (e *HTTPEngine) BestMove(ctx context.Context, fen string, depth int) (string, error) {
	var resp BestMoveResponse
	if err := e.doRequest(ctx, BestMoveRequest{Fen: fen, Depth: depth}, &resp); err != nil {
		return "", err
	}
	return resp.Fen, nil
}

func (e *HTTPEngine) doRequest(ctx context.Context, body MessageInterface, result MessageInterface) error {
	data, err := Encode(body)
	if err != nil {
		return &EngineError{Op: "encode", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.URL, bytes.NewReader(data))
	if err != nil {
		return &EngineError{Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.HTTPClient.Do(req)
	if err != nil {
		return &EngineError{Op: "post", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &EngineError{Op: "read", Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp ErrorResponse
		if err := Decode(respBody, &errResp); err == nil && errResp.Error != "" {
			return &EngineError{Op: "post", Status: resp.StatusCode, Err: errors.New(errResp.Error)}
		}
		return &EngineError{Op: "post", Status: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	if err := Decode(respBody, result); err != nil {
		return &EngineError{Op: "decode", Status: resp.StatusCode, Err: err}
	}
	return nil
}
