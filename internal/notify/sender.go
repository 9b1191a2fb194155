package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Sender delivers out-of-band acknowledgments through the channel gateway's
// outbound endpoint. With no endpoint configured it degrades to logging the
// message, which keeps local development free of gateway credentials.
type Sender struct {
	logs      *zap.SugaredLogger
	client    *http.Client
	senderURL string
}

func NewSender(logger *zap.SugaredLogger, senderURL string) *Sender {
	return &Sender{
		logs:      logger,
		senderURL: senderURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *Sender) Send(ctx context.Context, toPhone string, text string) error {
	if s.senderURL == "" {
		s.logs.Infow("outbound message (no sender configured)", "to", toPhone, "text", text)
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"to":   toPhone,
		"text": text,
	})
	if err != nil {
		return fmt.Errorf("marshal outbound message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.senderURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build outbound request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post outbound message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("outbound sender responded with status %d", resp.StatusCode)
	}

	return nil
}
