package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetsLayout(t *testing.T) {
	assets := Assets()

	index, err := fs.ReadFile(assets, "index.html")
	require.NoError(t, err)
	assert.Contains(t, string(index), "/assets/app.js")
	assert.Contains(t, string(index), "/assets/style.css")

	for _, name := range []string{"assets/app.js", "assets/style.css"} {
		_, err := fs.Stat(assets, name)
		assert.NoError(t, err, name)
	}
}

func TestClientDropsStaleResponses(t *testing.T) {
	script, err := fs.ReadFile(Assets(), "assets/app.js")
	require.NoError(t, err)

	// list and form renders are sequenced; a response for an older render is ignored
	assert.Contains(t, string(script), "if (current !== listRequest) {")
	assert.Contains(t, string(script), "if (current !== formRequest || editing !== id) {")
	assert.Regexp(t, `(?s)if \(current !== listRequest\) \{\s+return;\s+\}\s+rows\.replaceChildren\(\);`, string(script))
}
