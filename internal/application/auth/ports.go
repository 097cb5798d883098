package auth

// Mailer sends the account lifecycle mails. The token is a signed single-purpose
// JWT the implementation embeds in a link.
type Mailer interface {
	SendVerification(toEmail, name, token string) error
	SendPasswordReset(toEmail, name, token string) error
}
