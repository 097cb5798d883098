// Package content holds the compiled-in default pages served when no stored
// override exists for a slug. Administrators can shadow any of these from the
// back office; deleting the override falls back here again.
package content

import "github.com/rjfoods/storefront-api/internal/domain/entity"

// DefaultPages in display order.
var DefaultPages = []entity.PageContent{
	{
		Slug:    "terms-conditions",
		Title:   "Terms & Conditions",
		Content: "Welcome to RJ Foods.\n\n1. Acceptance of Terms\nBy accessing and using this website, you accept and agree to be bound by the terms and provision of this agreement.\n\n2. Ordering\nAll orders are subject to availability and confirmation of the order price.\n\n3. Delivery\nWe aim to deliver within 45 minutes, but delivery times may vary based on traffic and weather conditions.",
	},
	{
		Slug:    "privacy-policy",
		Title:   "Privacy Policy",
		Content: "RJ Foods respects your privacy.\n\n1. Information Collection\nWe collect information you provide directly to us, such as when you create an account, place an order, or contact customer support.\n\n2. Use of Information\nWe use the information we collect to process your orders and improve our services.",
	},
	{
		Slug:    "refund-policy",
		Title:   "Refund Policy",
		Content: "1. Cancellations\nYou can cancel your order within 5 minutes of placing it.\n\n2. Refunds\nIf you receive a wrong or damaged item, please contact us immediately for a full refund or replacement.\n\n3. Payment\nRefunds for online payments will be processed within 5-7 business days.",
	},
	{
		Slug:    "cookie-policy",
		Title:   "Cookie Policy",
		Content: "We use cookies to improve your experience.\n\n1. What are cookies?\nCookies are small text files stored on your device.\n\n2. How we use them\nWe use cookies to remember your cart items and login status.",
	},
}

// Default returns the compiled-in page for slug, or nil if none exists.
func Default(slug string) *entity.PageContent {
	for i := range DefaultPages {
		if DefaultPages[i].Slug == slug {
			p := DefaultPages[i]
			return &p
		}
	}
	return nil
}
