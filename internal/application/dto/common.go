package dto

// PageRequest pagination for listings.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage applies defaults when Limit/Offset are zero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse page metadata in responses.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse HTTP error body. Login carries the sign-in route the client
// should redirect to when the failure is a missing/expired session, so the
// storefront can distinguish "go log in" (401) from "access denied" (403).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Login   string `json:"login,omitempty"`
}
