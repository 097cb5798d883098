package entity

import "time"

// PageContent is an editable static page, addressed by slug. A stored page
// shadows the compiled-in default with the same slug.
type PageContent struct {
	Slug      string // e.g. "privacy-policy"
	Title     string
	Content   string
	UpdatedAt time.Time
}
