// Package client is a Go client for the TOPSIS ranking server.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/topsis/pkg/api"
)

const (
	DefaultClientTimeout = 30 * time.Second
	DefaultRetryMax      = 3

	zstdEncoding = "zstd"
)

type ClientConfig struct {
	BaseURL         string
	Timeout         time.Duration
	RetryMax        int
	ZstdCompression bool
}

// NewClientConfig builds a ClientConfig for baseURL with zstd compression on.
func NewClientConfig(baseURL string, timeout time.Duration, retryMax int) *ClientConfig {
	return &ClientConfig{
		BaseURL:         baseURL,
		Timeout:         timeout,
		RetryMax:        retryMax,
		ZstdCompression: true,
	}
}

type Client struct {
	config      *ClientConfig
	restyClient *resty.Client
	encoder     *zstd.Encoder
	decoder     *zstd.Decoder
}

// ResponseError is returned when the server answers with an error envelope
// or a non 2xx status.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("ranking server returned %d: %s", e.StatusCode, e.Message)
}

// NewClient creates a ranking client. Transport failures and 5xx answers are
// retried by retryablehttp underneath resty; the last 5xx answer is surfaced
// as a *ResponseError once retries run out.
func NewClient(cfg *ClientConfig) (*Client, error) {
	if cfg == nil || cfg.BaseURL == "" {
		return nil, fmt.Errorf("client configuration requires a base URL")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultClientTimeout
	}
	if cfg.RetryMax < 0 {
		cfg.RetryMax = DefaultRetryMax
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = 100 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	restyClient := resty.NewWithClient(retryClient.StandardClient()).
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	client := &Client{
		config:      cfg,
		restyClient: restyClient,
	}

	if cfg.ZstdCompression {
		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		client.encoder = encoder

		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		client.decoder = decoder
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Int("retry_max", cfg.RetryMax).
		Str("timeout", cfg.Timeout.String()).
		Bool("zstd", cfg.ZstdCompression).
		Msg("ranking client initialized")

	return client, nil
}

// Close cleans up client resources
func (c *Client) Close() {
	if c.encoder != nil {
		c.encoder.Close()
	}
	if c.decoder != nil {
		c.decoder.Close()
	}
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) error {
	var body api.StdResponse[api.HealthResponse]
	if err := c.do(ctx, resty.MethodGet, api.HealthPath, nil, &body); err != nil {
		return err
	}
	if body.Body.Status != api.StatusOK {
		return fmt.Errorf("unexpected health status %q", body.Body.Status)
	}
	return nil
}

// Rank asks the server to score and rank a decision problem.
func (c *Client) Rank(ctx context.Context, req api.RankRequest) (api.RankResponse, error) {
	var body api.StdResponse[api.RankResponse]
	if err := c.do(ctx, resty.MethodPost, api.RankPath, req, &body); err != nil {
		return api.RankResponse{}, err
	}
	return body.Body, nil
}

func (c *Client) do(ctx context.Context, method, path string, request any, envelope any) error {
	req := c.restyClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")

	if c.decoder != nil {
		req.SetHeader("Accept-Encoding", zstdEncoding)
	}

	if request != nil {
		payload, err := sonic.Marshal(request)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		if c.encoder != nil {
			payload = c.encoder.EncodeAll(payload, nil)
			req.SetHeader("Content-Encoding", zstdEncoding)
		}
		req.SetHeader("Content-Type", "application/json").
			SetBody(payload)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}

	responseBody := resp.Body()
	if c.decoder != nil && strings.EqualFold(resp.Header().Get("Content-Encoding"), zstdEncoding) {
		responseBody, err = c.decoder.DecodeAll(responseBody, nil)
		if err != nil {
			return fmt.Errorf("failed to decompress response: %w", err)
		}
	}

	log.Trace().
		Str("method", method).
		Str("path", path).
		Int("status_code", resp.StatusCode()).
		Int("body_size", len(responseBody)).
		Msg("ranking server responded")

	var errEnvelope struct {
		Error *string `json:"error,omitempty"`
	}
	if len(responseBody) > 0 {
		if err := sonic.Unmarshal(responseBody, &errEnvelope); err != nil && !resp.IsError() {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}
	if errEnvelope.Error != nil {
		return &ResponseError{StatusCode: resp.StatusCode(), Message: *errEnvelope.Error}
	}
	if resp.IsError() {
		return &ResponseError{StatusCode: resp.StatusCode(), Message: string(responseBody)}
	}

	if err := sonic.Unmarshal(responseBody, envelope); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
