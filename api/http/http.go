package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	"github.com/kardolus/adventure-agent/config"
)

const (
	contentType              = "application/json"
	errFailedToRead          = "failed to read response: %w"
	errFailedToCreateRequest = "failed to create request: %w"
	errFailedToMakeRequest   = "failed to make request: %w"
	headerContentType        = "Content-Type"
	headerUserAgent          = "User-Agent"
)

// Response carries the raw body plus the headers and status the transport
// layer needs for session bookkeeping.
type Response struct {
	Body    []byte
	Headers map[string]string
	Status  int
}

type Caller interface {
	PostWithHeadersResponse(ctx context.Context, url string, body []byte, headers map[string]string) (Response, error)
}

type RestCaller struct {
	client *http.Client
	config config.Config
}

// Ensure RestCaller implements Caller interface
var _ Caller = &RestCaller{}

func New(cfg config.Config) *RestCaller {
	var client *http.Client
	if cfg.SkipTLSVerify {
		transport := &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
		client = &http.Client{
			Transport: transport,
		}
	} else {
		client = &http.Client{}
	}

	return &RestCaller{
		client: client,
		config: cfg,
	}
}

// PostWithHeadersResponse always returns whatever body and headers it got,
// even on non-2xx, so the session transport can reason about rejections.
func (r *RestCaller) PostWithHeadersResponse(ctx context.Context, url string, body []byte, headers map[string]string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return Response{}, fmt.Errorf(errFailedToCreateRequest, err)
	}

	req.Header.Set(headerContentType, contentType)
	req.Header.Set(headerUserAgent, r.config.UserAgent)
	for k, v := range r.config.CustomHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf(errFailedToMakeRequest, err)
	}
	defer resp.Body.Close()

	out := Response{
		Headers: flattenHeaders(resp.Header),
		Status:  resp.StatusCode,
	}

	out.Body, err = io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf(errFailedToRead, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return out, fmt.Errorf("http status %d: %s", resp.StatusCode, bytes.TrimSpace(out.Body))
	}

	return out, nil
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		out[k] = h.Get(k)
	}
	return out
}
