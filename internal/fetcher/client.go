package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/carsanmilcar/crop-analysis/internal/config"
	"github.com/carsanmilcar/crop-analysis/internal/dataset"
)

// Client fetches grapher datasets and metadata documents over HTTP. A single
// client is shared across the fetches of one invocation so the rate limiter
// applies to all of them.
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
	retryOpts  RetryOptions
}

// NewClient builds a client from fetch configuration.
func NewClient(cfg config.FetchConfig) *Client {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	opts := DefaultRetryOptions
	if cfg.MaxAttempts > 0 {
		opts.MaxAttempts = cfg.MaxAttempts
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(limit, 1),
		retryOpts:  opts,
	}
}

// get performs a rate-limited GET and classifies transport failures. The
// caller owns the response body on success.
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &ErrCancelled{Msg: "interrupted while waiting for the rate limiter", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ErrNetwork{Msg: fmt.Sprintf("failed to build request for %s", url), Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, &ErrCancelled{Msg: fmt.Sprintf("GET %s", url), Err: err}
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, &ErrTimeout{Msg: fmt.Sprintf("GET %s", url), Err: err}
		}
		return nil, &ErrNetwork{Msg: fmt.Sprintf("GET %s", url), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, &ErrNetwork{Msg: fmt.Sprintf("GET %s returned status %s", url, resp.Status)}
	}
	return resp, nil
}

// FetchDataset retrieves a CSV payload and parses it into a tabular dataset.
// Column names are taken verbatim from the header row.
func (c *Client) FetchDataset(ctx context.Context, url string) (*dataset.Table, error) {
	return withRetry(ctx, c.retryOpts, func(ctx context.Context) (*dataset.Table, error) {
		resp, err := c.get(ctx, url)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		table, err := dataset.ParseCSV(resp.Body)
		if err != nil {
			return nil, &ErrFormat{Msg: fmt.Sprintf("response from %s is not valid CSV", url), Err: err}
		}
		zap.S().Debugf("Parsed dataset from %s: %d rows, %d columns", url, table.NumRows(), len(table.Columns()))
		return table, nil
	})
}

// FetchMetadata retrieves and parses a metadata JSON document.
func (c *Client) FetchMetadata(ctx context.Context, url string) (*Metadata, error) {
	return withRetry(ctx, c.retryOpts, func(ctx context.Context) (*Metadata, error) {
		resp, err := c.get(ctx, url)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		metadata, err := ParseMetadata(resp.Body)
		if err != nil {
			return nil, &ErrFormat{Msg: fmt.Sprintf("response from %s is not valid JSON", url), Err: err}
		}
		return metadata, nil
	})
}

// DownloadFile streams the response body for url to path, creating parent
// directories as needed. An already existing target file is left untouched
// and the download is skipped.
func (c *Client) DownloadFile(ctx context.Context, url, path string) error {
	if _, err := os.Stat(path); err == nil {
		zap.S().Infof("File already exists, skipping: %s", path)
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	_, err := withRetry(ctx, c.retryOpts, func(ctx context.Context) (struct{}, error) {
		var zero struct{}

		resp, err := c.get(ctx, url)
		if err != nil {
			return zero, err
		}
		defer resp.Body.Close()

		file, err := os.Create(path)
		if err != nil {
			return zero, fmt.Errorf("failed to create file %s: %w", path, err)
		}

		if _, err := io.Copy(file, resp.Body); err != nil {
			file.Close()
			os.Remove(path)
			return zero, &ErrNetwork{Msg: fmt.Sprintf("failed to stream %s to %s", url, path), Err: err}
		}
		if err := file.Close(); err != nil {
			os.Remove(path)
			return zero, fmt.Errorf("failed to close %s: %w", path, err)
		}
		return zero, nil
	})
	if err != nil {
		return err
	}

	zap.S().Infof("File downloaded successfully: %s", path)
	return nil
}
