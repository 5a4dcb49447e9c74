package workflows

import (
	"io"
	"net/http"
	"unicode/utf8"
)

// Fetcher retrieves template content for a URL. Implementations return
// the content as UTF-8 text or an error describing why the fetch
// failed.
type Fetcher interface {
	Fetch(url string) (string, error)
}

// HTTPFetcher fetches templates over HTTP.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher backed by the default client.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: http.DefaultClient}
}

// Fetch performs a single GET. A non-2xx status, transport error, or
// non-UTF-8 body is a FetchError; no retries are attempted.
func (f *HTTPFetcher) Fetch(url string) (string, error) {
	resp, err := f.Client.Get(url)
	if err != nil {
		return "", &FetchError{URL: url, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Cause: err}
	}
	if !utf8.Valid(body) {
		return "", &FetchError{URL: url, Cause: errNotUTF8}
	}

	return string(body), nil
}

var errNotUTF8 = &notUTF8Error{}

type notUTF8Error struct{}

func (*notUTF8Error) Error() string { return "response body is not valid UTF-8" }
