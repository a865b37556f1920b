package campaign

import (
	"html/template"
	"strings"
)

// Email body for one recipient. The pixel and the download link are both
// keyed by (campaignId, recipientEmail) so opens and clicks can be
// attributed per recipient.
var emailTmpl = template.Must(template.New("campaign").Parse(`<!DOCTYPE html>
<html lang="es">
<body style="font-family:Arial,Helvetica,sans-serif;color:#333;margin:0;padding:24px">
  <h2 style="color:#1a5276">{{.Subject}}</h2>
  <p>Hola, te compartimos nuestro nuevo catálogo. Descárgalo aquí:</p>
  <p>
    <a href="{{.ClickURL}}"
       style="background:#1a5276;color:#fff;padding:12px 20px;text-decoration:none;border-radius:4px">
      Ver catálogo (PDF)
    </a>
  </p>
  <p style="font-size:12px;color:#888">FerreSur · Si no quieres recibir estos correos, responde este mensaje.</p>
  <img src="{{.PixelURL}}" width="1" height="1" alt="" style="display:none">
</body>
</html>`))

type emailData struct {
	Subject  string
	ClickURL string
	PixelURL string
}

func renderEmail(data emailData) (string, error) {
	var b strings.Builder
	if err := emailTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
