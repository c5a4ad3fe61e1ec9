package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

type Sender struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func NewSender(host, port, username, password, from string) *Sender {
	return &Sender{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		From:     from,
	}
}

const resetTemplate = `
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px; }
        .header { background-color: #2d3e50; color: white; padding: 10px; text-align: center; border-radius: 5px 5px 0 0; }
        .content { padding: 20px; }
        .button { display: inline-block; padding: 10px 20px; background-color: #18bc9c; color: black; text-decoration: none; border-radius: 4px; font-weight: bold; }
        .footer { margin-top: 20px; font-size: 0.8em; color: #777; text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Quotevault password reset</h1>
        </div>
        <div class="content">
            <p>Hi,</p>
            <p>Someone requested a password reset for this address. The link below works for 10 minutes.</p>
            <p style="text-align: center;">
                <a href="{{.Link}}" class="button">Reset password</a>
            </p>
            <p>If you didn't request a reset, you can safely ignore this email.</p>
        </div>
        <div class="footer">
            <p>&copy; 2026 Quotevault</p>
        </div>
    </div>
</body>
</html>
`

func (s *Sender) SendPasswordReset(to, link string) error {
	t, err := template.New("reset").Parse(resetTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, map[string]string{"Link": link}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	// Email headers
	headers := make(map[string]string)
	headers["From"] = s.From
	headers["To"] = to
	headers["Subject"] = "Reset your Quotevault password"
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=\"UTF-8\""

	message := ""
	for k, v := range headers {
		message += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	message += "\r\n" + body.String()

	// If no host is configured, just log it (for development/demo purposes)
	if s.Host == "" {
		fmt.Println("==================================================")
		fmt.Printf("MOCK EMAIL TO: %s\n", to)
		fmt.Printf("SUBJECT: %s\n", headers["Subject"])
		fmt.Printf("LINK: %s\n", link)
		fmt.Println("==================================================")
		return nil
	}

	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)
	return smtp.SendMail(addr, auth, s.From, []string{to}, []byte(message))
}
