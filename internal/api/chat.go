package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/nkumar/govbot/internal/errors"
	"github.com/nkumar/govbot/internal/models"
)

// Send posts a user message to /chat and returns the bot reply.
// The reply may embed portal markup; rendering is the caller's concern.
// No retries: one request, one response.
func (c *PortalClient) Send(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", apierrors.ErrEmptyMessage
	}

	body, err := json.Marshal(models.ChatRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	return c.postForReply("chat", models.PathChat, bytes.NewReader(body))
}

// Reset posts to /reset, clearing the server-side conversation, and returns
// the greeting for a fresh session.
func (c *PortalClient) Reset() (string, error) {
	return c.postForReply("reset", models.PathReset, nil)
}

// postForReply performs a portal POST and extracts the "reply" field.
func (c *PortalClient) postForReply(op, path string, body io.Reader) (string, error) {
	if c.IsClosed() {
		return "", apierrors.ErrClientClosed
	}

	endpoint := c.baseURL + path

	req, err := http.NewRequest(http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(op, endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", apierrors.NewNetworkError(op, endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint, op+" request failed", string(respBody))
	}

	if !gjson.ValidBytes(respBody) {
		return "", apierrors.NewParseError("response is not valid JSON", string(respBody))
	}

	reply := gjson.GetBytes(respBody, "reply")
	if !reply.Exists() {
		return "", apierrors.NewParseError("missing reply field", string(respBody))
	}

	return reply.String(), nil
}

// classifyTransportError distinguishes deadline expiry from other transport
// failures so callers can hint accordingly.
func classifyTransportError(op, endpoint string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apierrors.NewTimeoutError(endpoint, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apierrors.NewTimeoutError(endpoint, err)
	}
	return apierrors.NewNetworkError(op, endpoint, err)
}
