package dto

import "time"

// SavePageRequest admin page override input.
type SavePageRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required"`
}

// PageContentResponse a content page. Customized is true when the content comes
// from a stored override rather than the compiled-in default; UpdatedAt is nil
// for defaults.
type PageContentResponse struct {
	Slug       string     `json:"slug"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Customized bool       `json:"customized"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
