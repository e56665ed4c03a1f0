package schema

import "strings"

// DefaultCategory is assigned to chunks whose doc carries no category marker.
const DefaultCategory = "Other"

const categoryMarker = "Category:"

// ParseCategory extracts the category from a "Category: <Name>" marker in doc.
// Only the first word after the marker counts. Without a usable marker the
// result is DefaultCategory.
func ParseCategory(doc string) string {
	pos := strings.Index(doc, categoryMarker)
	if pos < 0 {
		return DefaultCategory
	}

	words := strings.Fields(doc[pos+len(categoryMarker):])
	if len(words) == 0 {
		return DefaultCategory
	}

	return words[0]
}
