package vlr

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"
	"vlrdata-backend/lib/restyutil"
	"vlrdata-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/vlr")

// BaseURL is the site origin used to absolutize root-relative links.
const BaseURL = "https://www.vlr.gg"

var ErrUpstream = fmt.Errorf("upstream document unavailable")

// Fetcher retrieves a parsed document by site-relative path. Client is the
// real implementation; tests substitute their own.
type Fetcher interface {
	FetchDocument(ctx context.Context, path string) (*goquery.Document, error)
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	// BaseUrl defaults to the public site.
	BaseUrl string
	// Timeout defaults to 20 seconds.
	Timeout time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = BaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 20
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")
	client.SetHeader("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(opts.Timeout)

	telemetry.InstrumentResty(client, "scrapers/vlr/http")

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

// SetInstrumentOutput dumps every request/response pair the client makes,
// for debugging selector drift against the real site.
func (c *Client) SetInstrumentOutput(output restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.Http, output)
}

// FetchDocument fetches a single document. Any non-success outcome becomes
// ErrUpstream; no retries are performed here.
func (c *Client) FetchDocument(ctx context.Context, path string) (*goquery.Document, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: status %s", ErrUpstream, res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err)
	}
	return doc, nil
}
