package domain

// Destination is a catalog entry. The catalog is read-mostly: entries are
// written once by the seed routine and never updated or deleted through the
// public API. Price is the numeric per-night rate in USD; formatting is a
// presentation concern.
type Destination struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription,omitempty"`
	Images          []string `json:"images"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews"`
	Category        string   `json:"category"`
	Region          string   `json:"region"`
	Duration        string   `json:"duration"`
	Price           float64  `json:"price"`
	Highlights      []string `json:"highlights,omitempty"`
}

// CoverImage returns the canonical image for the destination, the first entry
// of the image list.
func (d Destination) CoverImage() string {
	if len(d.Images) == 0 {
		return ""
	}
	return d.Images[0]
}
