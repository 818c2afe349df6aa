package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeHTML(""))
}

func TestEscapeHTML_NoSpecialCharacters(t *testing.T) {
	text := "This is normal text with no special characters"
	assert.Equal(t, text, EscapeHTML(text))
}

func TestEscapeHTML_Ampersand(t *testing.T) {
	assert.Equal(t, "A &amp; B", EscapeHTML("A & B"))
}

func TestEscapeHTML_AngleBrackets(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", EscapeHTML("<script>alert(1)</script>"))
}

func TestEscapeHTML_Quotes(t *testing.T) {
	assert.Equal(t, "&quot;quoted&quot; &amp; &#39;single&#39;", EscapeHTML(`"quoted" & 'single'`))
}

func TestEscapeHTML_AlreadyEscapedIsEscapedAgain(t *testing.T) {
	assert.Equal(t, "&amp;amp;", EscapeHTML("&amp;"))
}

func TestEscapeHTML_UnicodeCharacters(t *testing.T) {
	text := "résumé with unicode: α β γ"
	// Unicode should pass through unchanged
	assert.Equal(t, text, EscapeHTML(text))
}

func TestEscapeHTML_MixedContent(t *testing.T) {
	result := EscapeHTML("Grew revenue 40% for <Acme & Sons>")
	assert.Contains(t, result, "40%")
	assert.Contains(t, result, "&lt;Acme &amp; Sons&gt;")
}
