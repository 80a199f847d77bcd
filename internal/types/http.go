package types

import "net/http"

// Doer abstracts *http.Client so the request executor can be tested with a
// stub transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
