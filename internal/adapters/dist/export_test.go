package dist

import (
	"net/http"

	"github.com/go-git/go-billy/v5"
)

// NewFetcherWithClient exposes the client-injecting constructor to tests.
func NewFetcherWithClient(fsys billy.Filesystem, client *http.Client) *Fetcher {
	return newFetcherWithClient(fsys, client)
}
