package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeXML_StripsDoctypeWithEntity(t *testing.T) {
	raw := `<?xml version="1.0"?>
<!DOCTYPE foo [<!ENTITY xxe SYSTEM "file:///etc/passwd">]>
<Document><Nm>&xxe;</Nm></Document>`

	out := SanitizeXML(raw)

	assert.NotContains(t, out, "<!DOCTYPE")
	assert.NotContains(t, out, "<!ENTITY")
	assert.NotContains(t, out, "file:///etc/passwd")
	// The dangling reference is neutralized into literal text.
	assert.Contains(t, out, "&amp;xxe;")
}

func TestSanitizeXML_StripsStandaloneEntityDecl(t *testing.T) {
	raw := `<!ENTITY boom "x"><Document/>`

	out := SanitizeXML(raw)

	assert.Equal(t, "<Document/>", out)
}

func TestSanitizeXML_KeepsPredefinedEntities(t *testing.T) {
	raw := `<Nm>Smith &amp; Sons &lt;Ltd&gt; &apos;q&apos; &quot;x&quot;</Nm>`

	out := SanitizeXML(raw)

	assert.Equal(t, raw, out)
}

func TestSanitizeXML_LeavesNumericReferences(t *testing.T) {
	raw := `<Nm>line&#10;break &#x20AC;</Nm>`

	out := SanitizeXML(raw)

	assert.Equal(t, raw, out)
}

func TestSanitizeXML_CleanInputUnchanged(t *testing.T) {
	raw := `<?xml version="1.0" encoding="UTF-8"?><Document><MsgId>M1</MsgId></Document>`

	assert.Equal(t, raw, SanitizeXML(raw))
}

func TestSanitizeXML_SanitizedOutputParsesStrict(t *testing.T) {
	raw := `<!DOCTYPE d [<!ENTITY e "v">]><Document><Nm>&e;</Nm></Document>`

	out := SanitizeXML(raw)

	root, err := decodeTree(out)
	assert.NoError(t, err)
	assert.Equal(t, "Document", root.XMLName.Local)
	assert.True(t, strings.Contains(out, "&amp;e;"))
}
