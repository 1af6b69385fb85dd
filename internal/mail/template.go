package mail

import (
	"html/template"
	"strings"
)

// verificationTemplate is the HTML body of the account-verification mail.
// The link stays valid for 24 hours; the plain URL is repeated below the
// button for clients that strip styling.
var verificationTemplate = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f9f4; padding: 24px;">
  <div style="max-width: 520px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
    <h2 style="color: #2e7d32;">Welcome to Eco-Conscious{{if .Fullname}}, {{.Fullname}}{{end}}!</h2>
    <p>Thanks for signing up. Please confirm your email address to activate your account.</p>
    <p style="text-align: center; margin: 32px 0;">
      <a href="{{.VerifyURL}}" style="background-color: #2e7d32; color: #ffffff; padding: 12px 28px; border-radius: 4px; text-decoration: none;">Verify my email</a>
    </p>
    <p>This link expires in 24 hours. If the button does not work, copy this address into your browser:</p>
    <p style="word-break: break-all; color: #555555;">{{.VerifyURL}}</p>
    <p style="color: #999999; font-size: 12px;">If you did not create an account, you can ignore this message.</p>
  </div>
</body>
</html>`))

// renderVerificationEmail renders the verification mail body for the given
// recipient name and link.
func renderVerificationEmail(fullname, verifyURL string) (string, error) {
	var sb strings.Builder
	err := verificationTemplate.Execute(&sb, struct {
		Fullname  string
		VerifyURL string
	}{Fullname: fullname, VerifyURL: verifyURL})
	if err != nil {
		return "", err
	}

	return sb.String(), nil
}
