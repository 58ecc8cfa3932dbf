package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"parking-search-service/internal/domain"
	"parking-search-service/internal/ports"
)

// File-backed implementation of the ListingRepository port. The catalog is
// re-read on every call, so edits to the file show up without a restart.
type FileListingRepository struct{ Path string }

func NewFileListingRepository(path string) *FileListingRepository {
	return &FileListingRepository{Path: path}
}

func (f *FileListingRepository) ListListings(ctx context.Context) ([]domain.Listing, error) {
	bytes, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("list listings: read %q: %w", f.Path, ports.ErrCatalogUnavailable)
		}
		return nil, fmt.Errorf("list listings: read %q: %w", f.Path, err)
	}

	var data []ListingSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("list listings: parse %q: %w", f.Path, err)
	}

	listings, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	return listings, nil
}
