package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bingpaper/internal/faults"
	"bingpaper/internal/logging"
	"bingpaper/internal/picstore"
	"bingpaper/internal/textutil"
)

const (
	// DefaultBaseURL is the host serving both the archive feed and the pictures.
	DefaultBaseURL = "https://cn.bing.com"
	archivePath    = "/HPImageArchive.aspx"
	defaultTimeout = 30 * time.Second
	defaultAgent   = "bingpaper/dev"
)

// Image is one entry of the archive feed.
type Image struct {
	URL       string `json:"url"`
	Copyright string `json:"copyright"`
	Title     string `json:"title"`
	StartDate string `json:"startdate"`
	Hash      string `json:"hsh"`
}

// Response models the archive feed payload.
type Response struct {
	Images []Image `json:"images"`
}

// Store is the subset of the picture cache the client needs.
type Store interface {
	Lookup(name string) (picstore.Picture, bool)
	Write(name string, data []byte) (picstore.Picture, error)
}

// Fetcher resolves a feed day to a cached picture.
type Fetcher interface {
	Fetch(ctx context.Context, index int, global bool) (picstore.Picture, error)
}

// Client downloads the daily picture from the image archive.
type Client struct {
	baseURL    string
	userAgent  string
	store      Store
	httpClient *http.Client
	timeout    time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

var _ Fetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the timeout applied to each request, including on a client
// supplied through WithHTTPClient. Zero keeps the client's own timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithClock overrides the time source used for the cache-busting parameter.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		if agent = strings.TrimSpace(agent); agent != "" {
			c.userAgent = agent
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logging.NewComponentLogger(logger, "feed")
	}
}

// New creates a feed client that caches pictures in store.
func New(baseURL string, store Store, opts ...Option) (*Client, error) {
	if store == nil {
		return nil, faults.Wrap(faults.ErrStorageUnavailable, "feed", "new", "picture store required", nil)
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse feed base url: %w", err)
	}
	client := &Client{
		baseURL:    baseURL,
		userAgent:  defaultAgent,
		store:      store,
		httpClient: &http.Client{Timeout: defaultTimeout},
		now:        time.Now,
		logger:     logging.NewComponentLogger(nil, "feed"),
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.timeout > 0 && client.httpClient.Timeout != client.timeout {
		hc := *client.httpClient
		hc.Timeout = client.timeout
		client.httpClient = &hc
	}
	return client, nil
}

// Fetch resolves the picture published index days ago. A picture whose
// derived name is already cached is returned without downloading it again.
// global selects the locale-agnostic feed instead of the default region.
func (c *Client) Fetch(ctx context.Context, index int, global bool) (picstore.Picture, error) {
	if index < 0 {
		return picstore.Picture{}, faults.Wrap(faults.ErrSelectionOutOfRange, "feed", "fetch", fmt.Sprintf("day index %d must not be negative", index), nil)
	}

	image, err := c.Latest(ctx, index, global)
	if err != nil {
		return picstore.Picture{}, err
	}

	name := textutil.PictureFileName(image.Copyright)
	if pic, ok := c.store.Lookup(name); ok {
		c.logger.Info("picture exists",
			logging.String("path", pic.Path),
			logging.Int("day_index", index),
			logging.Bool("global", global))
		return pic, nil
	}

	data, err := c.download(ctx, image.URL)
	if err != nil {
		return picstore.Picture{}, err
	}
	pic, err := c.store.Write(name, data)
	if err != nil {
		return picstore.Picture{}, err
	}
	c.logger.Info("picture downloaded",
		logging.String("path", pic.Path),
		logging.Int("bytes", len(data)),
		logging.String("start_date", image.StartDate),
		logging.Int("day_index", index),
		logging.Bool("global", global))
	return pic, nil
}

// Latest returns the first feed entry for the requested day.
func (c *Client) Latest(ctx context.Context, index int, global bool) (Image, error) {
	endpoint, err := c.archiveURL(index, global)
	if err != nil {
		return Image{}, faults.Wrap(faults.ErrFeedUnavailable, "feed", "metadata", "build url", err)
	}

	resp, latency, err := c.get(ctx, endpoint)
	if err != nil {
		return Image{}, faults.Wrap(faults.ErrFeedUnavailable, "feed", "metadata", fmt.Sprintf("execute request (latency=%v)", latency), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Image{}, faults.Wrap(faults.ErrFeedUnavailable, "feed", "metadata", fmt.Sprintf("archive returned %d (latency=%v)", resp.StatusCode, latency), nil)
	}

	var payload Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Image{}, faults.Wrap(faults.ErrFeedFormat, "feed", "metadata", "decode archive response", err)
	}
	if len(payload.Images) == 0 {
		return Image{}, faults.Wrap(faults.ErrFeedFormat, "feed", "metadata", "archive response has no images", nil)
	}

	c.logger.Debug("archive fetched",
		logging.Int("image_count", len(payload.Images)),
		logging.Duration("latency", latency))
	return payload.Images[0], nil
}

func (c *Client) archiveURL(index int, global bool) (string, error) {
	endpoint, err := url.Parse(c.baseURL + archivePath)
	if err != nil {
		return "", err
	}
	params := url.Values{}
	params.Set("format", "js")
	params.Set("idx", strconv.Itoa(index))
	params.Set("n", "1")
	params.Set("nc", strconv.FormatInt(c.now().UnixMilli(), 10))
	params.Set("pid", "hp")
	if global {
		params.Set("ensearch", "1")
	}
	endpoint.RawQuery = params.Encode()
	return endpoint.String(), nil
}

// assetURL resolves the relative picture URL from the feed against the feed host.
func (c *Client) assetURL(relative string) (string, error) {
	relative = strings.TrimSpace(relative)
	if relative == "" {
		return "", fmt.Errorf("empty asset url")
	}
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(relative)
	if err != nil {
		return "", err
	}
	// Pictures are always served by the feed host.
	ref.Scheme, ref.Host, ref.User = "", "", nil
	return base.ResolveReference(ref).String(), nil
}

func (c *Client) download(ctx context.Context, relative string) ([]byte, error) {
	endpoint, err := c.assetURL(relative)
	if err != nil {
		return nil, faults.Wrap(faults.ErrFeedFormat, "feed", "asset", fmt.Sprintf("invalid asset url %q", relative), err)
	}

	resp, latency, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, faults.Wrap(faults.ErrAssetUnavailable, "feed", "asset", fmt.Sprintf("execute request (latency=%v)", latency), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, faults.Wrap(faults.ErrAssetUnavailable, "feed", "asset", fmt.Sprintf("asset returned %d (latency=%v)", resp.StatusCode, latency), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, faults.Wrap(faults.ErrAssetUnavailable, "feed", "asset", "read body", err)
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	return resp, time.Since(requestStart), err
}
