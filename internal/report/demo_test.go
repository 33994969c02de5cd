package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/motiondump/internal/testutil"
)

func TestRenderDemoGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDemo(&buf, []string{"Bounce.json", "ScaleRotate.json"}))
	testutil.AssertGolden(t, "demo", buf.Bytes())
}

func TestLottieFilesSortedJSONOnly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", "notes.txt", "c.JSON", "demo.html"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0755))

	files, err := LottieFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json"}, files)
}

func TestWriteDemo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "z.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "m.json"), []byte("{}"), 0644))

	path, count, err := WriteDemo(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DemoName), path)
	assert.Equal(t, 2, count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, PlayerScript)
	m := bytes.Index(data, []byte(`src="./m.json"`))
	z := bytes.Index(data, []byte(`src="./z.json"`))
	require.True(t, m >= 0 && z >= 0)
	assert.Less(t, m, z)
}

func TestWriteDemoMissingDir(t *testing.T) {
	_, _, err := WriteDemo(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
