// Package drive lists candidate images from a Google Drive folder.
package drive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/domain"
	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/service"
)

const pageSize = 1000

// Lister lists image files in a Drive folder.
type Lister struct {
	svc     *drive.Service
	limiter *rate.Limiter
}

// NewLister creates a Lister from explicit client options.
func NewLister(ctx context.Context, opts ...option.ClientOption) (*Lister, error) {
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive.NewService: %w", err)
	}
	return &Lister{
		svc:     svc,
		limiter: rate.NewLimiter(rate.Limit(4), 8),
	}, nil
}

// NewAPIKeyLister creates a Lister authenticated with an API key. The folder
// must be shared publicly for key-based access to work.
func NewAPIKeyLister(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Lister, error) {
	return NewLister(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
}

// NewDefaultCredentialsLister uses Google application default credentials.
func NewDefaultCredentialsLister(ctx context.Context) (*Lister, error) {
	creds, err := google.FindDefaultCredentials(ctx, drive.DriveReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("find default credentials: %w", err)
	}
	return NewLister(ctx, option.WithCredentials(creds))
}

// Factory returns a service.ListerFactory that builds API-key listers with
// the extra options appended (used to point tests at a fake endpoint).
func Factory(opts ...option.ClientOption) service.ListerFactory {
	return func(ctx context.Context, apiKey string) (service.ImageLister, error) {
		return NewAPIKeyLister(ctx, apiKey, opts...)
	}
}

// queryEscaper quotes a value for use inside a single-quoted Drive query string.
var queryEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// ListImages returns every non-trashed image directly inside folderID, in
// the order Drive returns them, following all pages.
func (l *Lister) ListImages(ctx context.Context, folderID string) ([]domain.Image, error) {
	q := fmt.Sprintf("'%s' in parents and mimeType contains 'image/' and trashed = false", queryEscaper.Replace(folderID))

	call := l.svc.Files.List().
		Q(q).
		Fields("nextPageToken, files(id, name)").
		PageSize(pageSize).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true)

	out := make([]domain.Image, 0, 64)
	err := call.Pages(ctx, func(page *drive.FileList) error {
		if err := l.limiter.Wait(ctx); err != nil {
			return err
		}
		for _, f := range page.Files {
			out = append(out, domain.Image{ID: f.Id, Name: f.Name})
		}
		return nil
	})
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, &domain.UpstreamError{Status: gerr.Code, Body: upstreamBody(gerr)}
		}
		return nil, fmt.Errorf("drive files.list: %w", err)
	}
	return out, nil
}

func upstreamBody(err *googleapi.Error) string {
	if err.Body != "" {
		return err.Body
	}
	return err.Message
}
