package ports

import (
	"context"
	"io"
)

// Fetcher downloads release files.
//
//go:generate mockgen -source=distribution.go -destination=mocks/mock_distribution.go -package=mocks
type Fetcher interface {
	// Fetch streams the resource at url into w.
	Fetch(ctx context.Context, url string, w io.Writer) error
}

// Extractor unpacks distribution archives.
type Extractor interface {
	// Extract unpacks the gzip compressed tarball at archive into dest.
	Extract(ctx context.Context, archive, dest string) error
}
