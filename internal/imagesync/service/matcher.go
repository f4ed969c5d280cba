package service

import (
	"path"
	"strings"

	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/domain"
	portfolio "github.com/brightlane-studio/portfolio-backend/internal/portfolio/domain"
)

// Match returns the first image, in the given order, whose name relates to the
// project: the lowercased name contains the brand, or contains the title with
// non-alphanumerics stripped, or the extension-less name is contained in the
// brand. There is no scoring. Empty needles never match.
func Match(p portfolio.Project, images []domain.Image) (domain.Image, bool) {
	brand := strings.ToLower(strings.TrimSpace(p.Brand))
	title := alnum(strings.ToLower(p.Title))

	for _, img := range images {
		name := strings.ToLower(img.Name)
		stem := strings.TrimSuffix(name, path.Ext(name))

		switch {
		case brand != "" && strings.Contains(name, brand):
			return img, true
		case title != "" && strings.Contains(name, title):
			return img, true
		case stem != "" && brand != "" && strings.Contains(brand, stem):
			return img, true
		}
	}
	return domain.Image{}, false
}

func alnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
