package contact

import (
	"errors"
	"fmt"
	"html"
	"net/mail"
	"strings"
)

var (
	ErrNotConfigured = errors.New("email service is not configured")
	ErrInvalidEmail  = errors.New("email address is invalid")
)

// ValidationError names the required fields that were missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// UpstreamError is returned when the email API rejects a send.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("email api returned status %d", e.Status)
}

// Message is a contact form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Company string `json:"company,omitempty"`
	Budget  string `json:"budget,omitempty"`
	Service string `json:"service,omitempty"`
}

// Normalize trims every field.
func (m Message) Normalize() Message {
	return Message{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Message: strings.TrimSpace(m.Message),
		Company: strings.TrimSpace(m.Company),
		Budget:  strings.TrimSpace(m.Budget),
		Service: strings.TrimSpace(m.Service),
	}
}

// Validate requires name, email and message, and a parseable address.
func (m Message) Validate() error {
	var missing []string
	if m.Name == "" {
		missing = append(missing, "name")
	}
	if m.Email == "" {
		missing = append(missing, "email")
	}
	if m.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// Subject is the notification subject line.
func (m Message) Subject() string {
	return "New contact from " + m.Name
}

func (m Message) rows() [][2]string {
	rows := [][2]string{{"Name", m.Name}, {"Email", m.Email}}
	if m.Company != "" {
		rows = append(rows, [2]string{"Company", m.Company})
	}
	if m.Service != "" {
		rows = append(rows, [2]string{"Service", m.Service})
	}
	if m.Budget != "" {
		rows = append(rows, [2]string{"Budget", m.Budget})
	}
	return rows
}

// Text renders the plain-text notification body.
func (m Message) Text() string {
	var b strings.Builder
	for _, r := range m.rows() {
		fmt.Fprintf(&b, "%s: %s\n", r[0], r[1])
	}
	b.WriteString("\n")
	b.WriteString(m.Message)
	b.WriteString("\n")
	return b.String()
}

// HTML renders the HTML notification body with all user input escaped.
func (m Message) HTML() string {
	var b strings.Builder
	b.WriteString("<h2>New contact form submission</h2><table>")
	for _, r := range m.rows() {
		fmt.Fprintf(&b, "<tr><td><strong>%s</strong></td><td>%s</td></tr>", r[0], html.EscapeString(r[1]))
	}
	b.WriteString("</table><p>")
	b.WriteString(strings.ReplaceAll(html.EscapeString(m.Message), "\n", "<br>"))
	b.WriteString("</p>")
	return b.String()
}
