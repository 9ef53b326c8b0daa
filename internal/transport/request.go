package transport

import (
	"io"
	"net/http"

	"github.com/agentstation/birdmap/pkg/errors"
)

// maxErrorBody caps how much of a failed response lands in the error message.
const maxErrorBody = 256

// ReadBody reads and closes resp.Body. A non-200 status yields a FetchError.
func ReadBody(resp *http.Response) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()

	url := ""
	if resp.Request != nil && resp.Request.URL != nil {
		url = resp.Request.URL.String()
	}

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := http.StatusText(resp.StatusCode)
		if len(snippet) > 0 {
			msg += ": " + string(snippet)
		}
		return nil, errors.NewFetchError(url, resp.StatusCode, msg)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}
	return body, nil
}
