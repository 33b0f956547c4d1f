package mail

import (
	"fmt"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// BuildHTML embrulha o corpo em texto puro numa casca HTML mínima.
// O texto é escapado aqui; o template renderizado chega cru.
func BuildHTML(bodyText string) string {
	body := htmlEscaper.Replace(bodyText)
	body = strings.ReplaceAll(body, "\n", "<br>\n")

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <style>
    body {font-family:Arial,Helvetica,sans-serif;font-size:15px;
          color:#222;background:#fff;margin:0;padding:20px}
    .wrap {max-width:600px;margin:0 auto}
    p {line-height:1.6;margin:0 0 12px}
  </style>
</head>
<body>
  <div class="wrap">
    <p>%s</p>
  </div>
</body>
</html>
`, body)
}
