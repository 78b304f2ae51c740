// Package databrowser is a typed client for the CFPB HMDA Data Browser
// API. Each call validates its parameters, issues a single GET against
// one of the three view endpoints and returns the decoded table.
//
//	client := databrowser.NewClient(databrowser.ClientOptions{})
//	loans, err := client.GetLoans(ctx, databrowser.Query{
//		Year:    2019,
//		States:  []string{"dc"},
//		Actions: []databrowser.Action{databrowser.ActionIncomplete},
//		Races:   []databrowser.Race{databrowser.RaceBlack, databrowser.RaceWhite},
//	})
//
// There is no retrying, caching or pagination; callers wanting parallel
// fetches issue independent calls themselves.
package databrowser

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseUrl = "https://ffiec.cfpb.gov/v2/data-browser-api"

const defaultTimeout = time.Second * 30

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	// overrides DefaultBaseUrl, mainly for tests
	BaseUrl string
	// defaults to 30s
	Timeout time.Duration
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetTimeout(timeout)
	client.SetHeader("user-agent", "tidyhome-go/1.0")

	instrument(client)

	return &Client{http: client}
}

// get runs the shared validate -> build -> execute pipeline and returns
// the raw response body for the endpoint decoder.
func (c *Client) get(ctx context.Context, path string, q Query, requireFilter bool) ([]byte, error) {
	if err := q.validate(requireFilter); err != nil {
		return nil, err
	}
	params, err := q.values()
	if err != nil {
		return nil, err
	}

	slog.DebugContext(
		ctx, "data browser request",
		"path", path,
		"query", params.Encode(),
	)

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(path)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	// anything outside 2xx fails, including 3xx leftovers resty's
	// redirect handling didn't resolve
	if res.StatusCode() < http.StatusOK || res.StatusCode() >= http.StatusMultipleChoices {
		return nil, &HttpError{
			StatusCode: res.StatusCode(),
			Body:       res.String(),
		}
	}

	return res.Body(), nil
}
