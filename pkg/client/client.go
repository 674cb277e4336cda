// Package client calls a running H-measure server.
package client

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/hmeasure/pkg/api"
)

const (
	DefaultTimeout  = 30 * time.Second
	DefaultRetryMax = 3
)

// ClientConfig configures a Client.
type ClientConfig struct {
	BaseURL         string
	Timeout         time.Duration
	RetryMax        int
	ZstdCompression bool
}

// ServerError is a failure reported by the server, either through the
// response envelope or an error status.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (HTTP %d): %s", e.StatusCode, e.Message)
}

type Client struct {
	config      *ClientConfig
	restyClient *resty.Client
	encoder     *zstd.Encoder
	decoder     *zstd.Decoder
}

// NewClient creates a client for the server at config.BaseURL.
func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil || config.BaseURL == "" {
		return nil, fmt.Errorf("client base URL is required")
	}
	cfg := *config
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryMax < 0 {
		cfg.RetryMax = 0
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = 100 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.Logger = nil
	// Hand the last response back instead of a generic "giving up" error so
	// the envelope's message reaches the caller.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	restyClient := resty.NewWithClient(retryClient.StandardClient()).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	client := &Client{
		config:      &cfg,
		restyClient: restyClient,
	}

	if cfg.ZstdCompression {
		restyClient.SetHeader("Accept-Encoding", "zstd")

		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		client.encoder = encoder

		decoder, err := zstd.NewReader(nil)
		if err != nil {
			encoder.Close()
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		client.decoder = decoder
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Int("retry_max", cfg.RetryMax).
		Str("timeout", cfg.Timeout.String()).
		Bool("zstd", cfg.ZstdCompression).
		Msg("hmeasure client initialized")

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

// Health reports the server status and default density.
func (c *Client) Health(ctx context.Context) (api.HealthResponse, error) {
	resp, err := c.restyClient.R().SetContext(ctx).Get(c.config.BaseURL + api.HealthRoute)
	if err != nil {
		return api.HealthResponse{}, fmt.Errorf("failed to make request: %w", err)
	}
	return unwrap[api.HealthResponse](c, resp)
}

// Compute asks the server for the H-measure of one classifier.
func (c *Client) Compute(ctx context.Context, req api.ComputeRequest) (api.ComputeResponse, error) {
	return send[api.ComputeRequest, api.ComputeResponse](ctx, c, req)
}

// Compare asks the server to rank several classifiers.
func (c *Client) Compare(ctx context.Context, req api.CompareRequest) (api.CompareResponse, error) {
	return send[api.CompareRequest, api.CompareResponse](ctx, c, req)
}

// send posts req to the route named after its type and unwraps the envelope.
func send[Req, Resp any](ctx context.Context, c *Client, req Req) (Resp, error) {
	var out Resp
	endpoint := c.config.BaseURL + "/" + reflect.TypeOf(req).Name()

	body, err := sonic.Marshal(req)
	if err != nil {
		return out, fmt.Errorf("failed to marshal request: %w", err)
	}

	r := c.restyClient.R().SetContext(ctx)
	if c.encoder != nil {
		originalSize := len(body)
		body = c.encoder.EncodeAll(body, nil)
		r.SetHeader("Content-Encoding", "zstd")
		log.Trace().
			Int("original_size", originalSize).
			Int("compressed_size", len(body)).
			Msg("Request body compressed")
	}

	log.Trace().Str("endpoint", endpoint).Msg("sending request")
	resp, err := r.SetBody(body).Post(endpoint)
	if err != nil {
		return out, fmt.Errorf("failed to make request: %w", err)
	}

	return unwrap[Resp](c, resp)
}

// unwrap decodes a StdResponse envelope and returns its body.
func unwrap[Resp any](c *Client, resp *resty.Response) (Resp, error) {
	var envelope api.StdResponse[Resp]
	responseBody := resp.Body()
	if c.decoder != nil && resp.Header().Get("Content-Encoding") == "zstd" {
		decompressed, err := c.decoder.DecodeAll(responseBody, nil)
		if err != nil {
			return envelope.Body, fmt.Errorf("failed to decompress response: %w", err)
		}
		responseBody = decompressed
	}

	if err := sonic.Unmarshal(responseBody, &envelope); err != nil {
		var zero Resp
		if resp.IsError() {
			return zero, &ServerError{StatusCode: resp.StatusCode(), Message: strings.TrimSpace(string(responseBody))}
		}
		return zero, fmt.Errorf("failed to unmarshal StdResponse: %w", err)
	}

	if envelope.Error != nil {
		return envelope.Body, &ServerError{StatusCode: resp.StatusCode(), Message: *envelope.Error}
	}
	if resp.IsError() {
		return envelope.Body, &ServerError{StatusCode: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	}
	return envelope.Body, nil
}
