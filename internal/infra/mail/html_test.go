package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildHTMLEscapesSpecials(t *testing.T) {
	html := BuildHTML("A & B <script>alert(1)</script>")

	assert.Contains(t, html, "A &amp; B &lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, html, "<script>")
}

func TestBuildHTMLConvertsNewlines(t *testing.T) {
	html := BuildHTML("linha 1\nlinha 2\n\nlinha 4")

	assert.Contains(t, html, "linha 1<br>\nlinha 2<br>\n<br>\nlinha 4")
}

func TestBuildHTMLShell(t *testing.T) {
	html := BuildHTML("oi")

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<meta charset="UTF-8">`)
	assert.Contains(t, html, "<p>oi</p>")
	assert.Contains(t, html, "</html>")
}
