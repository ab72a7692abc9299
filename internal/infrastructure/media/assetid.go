package media

import "strings"

// ExtractAssetID derives the media-host public id from a stored asset URL:
// the final path segment, truncated at the first dot. This is the only
// correlation key to the media host's delete API, so the transform must stay
// exact.
func ExtractAssetID(url string) string {
	parts := strings.Split(url, "/")
	last := parts[len(parts)-1]
	return strings.SplitN(last, ".", 2)[0]
}
