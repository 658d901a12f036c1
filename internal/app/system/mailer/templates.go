// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"
)

// ReplyEmailData holds data for the reply email templates.
type ReplyEmailData struct {
	RecipientName string
	ReplyText     string
}

// BuildReplyEmail creates a reply email with both HTML and text bodies.
// The reply text is escaped before newlines are turned into line breaks,
// so free text from the dashboard can never inject markup.
func BuildReplyEmail(subject string, data ReplyEmailData) Email {
	return Email{
		To:       "", // Set by caller
		Subject:  subject,
		TextBody: buildReplyText(data),
		HTMLBody: buildReplyHTML(data),
	}
}

func buildReplyText(data ReplyEmailData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Dear %s,\n\n", data.RecipientName))
	buf.WriteString(data.ReplyText)
	buf.WriteString("\n\nBest regards,\nAdmin Team\n")
	return buf.String()
}

func buildReplyHTML(data ReplyEmailData) string {
	escaped := html.EscapeString(data.ReplyText)
	body := strings.ReplaceAll(escaped, "\n", "<br>")

	tmpl := template.Must(template.New("reply").Parse(replyHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, struct {
		RecipientName string
		Body          template.HTML
	}{
		RecipientName: data.RecipientName,
		Body:          template.HTML(body),
	})
	return buf.String()
}

const replyHTMLTemplate = `<p>Dear {{.RecipientName}},</p><p>{{.Body}}</p><p>Best regards,<br>Admin Team</p>`
