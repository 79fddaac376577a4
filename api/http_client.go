// api/http_client.go
package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"crime-stats/models"

	"github.com/m-mizutani/goerr/v2"
)

// HTTPClient downloads incident report files from remote sources
type HTTPClient struct {
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with the given request timeout
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Download fetches url and returns the response body. The caller closes it.
func (c *HTTPClient) Download(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build download request",
			goerr.V("url", url), goerr.T(models.ErrTagIO))
	}
	req.Header.Set("Accept", "text/csv")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download incidents file",
			goerr.V("url", url), goerr.T(models.ErrTagIO))
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		res.Body.Close()
		return nil, goerr.New("unexpected status code: "+res.Status,
			goerr.V("url", url), goerr.T(models.ErrTagIO))
	}

	return res.Body, nil
}
