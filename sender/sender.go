// Package sender transmits assembled notices to the collector endpoint,
// synchronously, one POST per notice. Failures are returned to the caller;
// nothing here retries.
package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/thanhminhmr/go-notifier/configuration"
	"github.com/thanhminhmr/go-notifier/errors"
	"github.com/thanhminhmr/go-notifier/notice"

	"github.com/rs/zerolog"
)

type Config struct {
	Endpoint   string `env:"NOTIFIER_ENDPOINT" validate:"required,url"`
	ProjectID  uint64 `env:"NOTIFIER_PROJECT_ID" validate:"required"`
	ProjectKey string `env:"NOTIFIER_PROJECT_KEY" validate:"required"`
	Timeout    uint32 `env:"NOTIFIER_TIMEOUT" validate:"min=1,max=60"`
}

func init() {
	configuration.SetDefault("NOTIFIER_TIMEOUT", "10")
}

const ErrRejected = errors.String("collector rejected the notice")

type Sender struct {
	logger *zerolog.Logger
	client *http.Client
	url    string
	key    string
}

func New(logger *zerolog.Logger, config *Config) *Sender {
	return &Sender{
		logger: logger,
		client: &http.Client{Timeout: time.Duration(config.Timeout) * time.Second},
		url: strings.TrimSuffix(config.Endpoint, "/") +
			"/api/v3/projects/" + strconv.FormatUint(config.ProjectID, 10) + "/notices",
		key: config.ProjectKey,
	}
}

// Send posts one notice and checks the response status. The response body is
// drained so the connection can be reused.
func (s *Sender) Send(ctx context.Context, assembled *notice.Notice) error {
	body, err := json.Marshal(assembled)
	if err != nil {
		return errors.String("encode notice failed").AddCause(err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return errors.String("build notice request failed").AddCause(err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+s.key)
	response, err := s.client.Do(request)
	if err != nil {
		return errors.String("post notice failed").AddCause(err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, response.Body)
		_ = response.Body.Close()
	}()
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		s.logger.Warn().Int("status", response.StatusCode).Msg("Notice rejected")
		return ErrRejected.AddCause(errors.String("status " + response.Status))
	}
	s.logger.Debug().Int("status", response.StatusCode).Msg("Notice sent")
	return nil
}
