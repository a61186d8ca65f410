package catalog

import (
	"github.com/gosimple/slug"
)

const maxSlugLength = 50

// GenerateSlug builds a stable, reasonably unique slug from a product
// name and its Square variation id. Variation ids are stable upstream,
// so the suffix keeps slugs unique when names collide.
func GenerateSlug(name, variationID string) string {
	base := slug.Make(name)
	if base == "" {
		base = "product"
	}

	suffix := slug.Make(variationID)
	if len(suffix) > 12 {
		suffix = suffix[:12]
	}
	if suffix == "" && len(variationID) > 12 {
		suffix = variationID[:12]
	} else if suffix == "" {
		suffix = variationID
	}

	result := base
	if suffix != "" {
		result = base + "-" + suffix
	}
	if len(result) > maxSlugLength {
		result = result[:maxSlugLength]
	}
	return result
}
