package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adityaraghav/studyspace-backend/pkg/config"
	pkgerrors "github.com/adityaraghav/studyspace-backend/pkg/errors"
	"github.com/adityaraghav/studyspace-backend/pkg/logger"
	"github.com/adityaraghav/studyspace-backend/pkg/metrics"
)

// Client is a typed HTTP client for the membership data gateway, the system
// of record for members, seats, shifts and branches.
type Client struct {
	baseURL *url.URL
	token   string
	httpc   *http.Client
	logg    *logger.Logger
	metrics *metrics.GatewayMetrics
}

// New builds a gateway client from configuration.
func New(cfg config.GatewayConfig, logg *logger.Logger, gatewayMetrics *metrics.GatewayMetrics) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing gateway base url: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: base,
		token:   cfg.Token,
		httpc:   &http.Client{Timeout: timeout},
		logg:    logg,
		metrics: gatewayMetrics,
	}, nil
}

// Ping verifies the gateway is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", http.MethodGet, "/health", nil, nil, nil)
}

// gatewayError is the error body shape the gateway responds with.
type gatewayError struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body any, dest any) error {
	target := *c.baseURL
	target.Path = strings.TrimRight(target.Path, "/") + path
	if query != nil {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding gateway payload")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building gateway request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.send(req, operation, dest)
}

func (c *Client) send(req *http.Request, operation string, dest any) error {
	start := time.Now()
	resp, err := c.httpc.Do(req)
	c.metrics.ObserveDuration(operation, time.Since(start))
	if err != nil {
		c.metrics.IncFailure(operation)
		if c.logg != nil {
			ctx := c.logg.WithField(req.Context(), "gateway_op", operation)
			c.logg.Error(ctx, "gateway.unreachable", err)
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "membership gateway unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.metrics.IncFailure(operation)
		return c.errorFromResponse(operation, resp)
	}

	c.metrics.IncSuccess(operation)

	if dest == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding gateway response")
	}
	return nil
}

// errorFromResponse maps gateway failures onto typed errors. Business-rule
// rejections keep the upstream message so the operator sees it verbatim.
func (c *Client) errorFromResponse(operation string, resp *http.Response) error {
	message := fmt.Sprintf("gateway %s failed with status %d", operation, resp.StatusCode)
	var parsed gatewayError
	if err := json.NewDecoder(io.LimitReader(resp.Body, 8192)).Decode(&parsed); err == nil && parsed.Message != "" {
		message = parsed.Message
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return pkgerrors.New(pkgerrors.CodeNotFound, message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return pkgerrors.New(pkgerrors.CodeValidation, message)
	case http.StatusConflict:
		return pkgerrors.New(pkgerrors.CodeConflict, message)
	default:
		return pkgerrors.New(pkgerrors.CodeDependency, message).WithDetails(map[string]any{
			"operation": operation,
			"status":    resp.StatusCode,
		})
	}
}
