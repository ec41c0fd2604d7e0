package mailer

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
)

type welcomeData struct {
	Name     string
	Email    string
	Password string
	BaseURL  string
	Year     int
}

type resetData struct {
	Name     string
	ResetURL string
	Year     int
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Welcome</title></head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#fafafa;color:#333;">
  <div style="max-width:600px;margin:0 auto;padding:20px;">
    <div style="background-color:#ffffff;border-radius:8px;padding:30px;">
      <h2 style="text-align:center;font-weight:400;">Welcome {{.Name}}!</h2>
      <p>Your account has been created. You can now sign in to the platform.</p>
      <div style="background-color:#f5f7fa;padding:20px;border-radius:6px;">
        <h3 style="margin-top:0;font-size:16px;">Your sign-in details</h3>
        <p><strong>Email:</strong> {{.Email}}</p>
        <p><strong>Password:</strong> {{.Password}}</p>
      </div>
      <div style="text-align:center;margin:30px 0;">
        <a href="{{.BaseURL}}" style="background-color:#4A90E2;color:white;padding:12px 30px;text-decoration:none;border-radius:4px;">Go to the platform</a>
      </div>
      <p style="color:#777;font-size:14px;">If the button does not work, copy this link into your browser:</p>
      <p style="word-break:break-all;font-size:14px;">{{.BaseURL}}</p>
    </div>
    <p style="text-align:center;color:#999;font-size:13px;">If you did not request this account you can ignore this email. &copy; {{.Year}}</p>
  </div>
</body>
</html>`))

var resetTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Reset your password</title></head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#fafafa;color:#333;">
  <div style="max-width:600px;margin:0 auto;padding:20px;">
    <div style="background-color:#ffffff;border-radius:8px;padding:30px;">
      <h2 style="text-align:center;font-weight:400;">Hello {{if .Name}}{{.Name}}{{else}}there{{end}}</h2>
      <p>We received a request to reset your password. The link below is valid for a limited time.</p>
      <div style="text-align:center;margin:30px 0;">
        <a href="{{.ResetURL}}" style="background-color:#4A90E2;color:white;padding:12px 30px;text-decoration:none;border-radius:4px;">Reset password</a>
      </div>
      <p style="word-break:break-all;font-size:14px;">{{.ResetURL}}</p>
    </div>
    <p style="text-align:center;color:#999;font-size:13px;">If you did not ask for a reset you can ignore this email. &copy; {{.Year}}</p>
  </div>
</body>
</html>`))

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s template", tmpl.Name())
	}

	return buf.String(), nil
}
