// Package rest builds the resty clients shared by every provider package and
// maps transport and status failures onto the code error kinds.
package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/David-OConnor/bio-apis/internal/config"
	"github.com/David-OConnor/bio-apis/pkg/common/code"
)

// New returns a client for one provider. No retries are configured: retry
// policy belongs to the caller.
func New(baseURL string) *resty.Client {
	conf := config.Global().HTTP
	return resty.New().
		SetTimeout(time.Duration(conf.TimeoutSec) * time.Second).
		SetHeader("User-Agent", conf.UserAgent).
		SetBaseURL(baseURL)
}

// StatusErr converts a non-2xx response into a RemoteErr, or NotFoundErr for
// 404s. Returns nil for success statuses.
func StatusErr(res *resty.Response) error {
	if res.IsSuccess() {
		return nil
	}
	if res.StatusCode() == http.StatusNotFound {
		return code.NotFoundErr.WithStatus(res.StatusCode(), string(res.Body()))
	}
	return code.RemoteErr.WithStatus(res.StatusCode(), string(res.Body()))
}

// DecodeJSON parses a body into v, mapping parse failures to DecodeErr so a
// malformed payload is never coerced into a zeroed record.
func DecodeJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return code.DecodeErr.WithErr(err)
	}
	return nil
}
