package report

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DemoName is the file written into the demo directory.
const DemoName = "demo.html"

// PlayerScript is the web component used to play animations on the demo page.
const PlayerScript = "https://unpkg.com/@lottiefiles/lottie-player@latest/dist/lottie-player.js"

const demoStyle = `<style>
    lottie-player {
        width: 240px;
        height: 240px;
        display: inline-block;
    }
</style>
`

// WriteDemo writes a page into dir that plays every Lottie file in dir.
// It returns the page path and the number of animations on it.
func WriteDemo(dir string) (string, int, error) {
	files, err := LottieFiles(dir)
	if err != nil {
		return "", 0, err
	}

	path := filepath.Join(dir, DemoName)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create demo page: %w", err)
	}
	if err := RenderDemo(f, files); err != nil {
		f.Close()
		return "", 0, err
	}
	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("close demo page: %w", err)
	}
	return path, len(files), nil
}

// LottieFiles returns the names of the .json files directly inside dir,
// sorted.
func LottieFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read demo dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

// RenderDemo writes the demo page for files, which are relative to the page.
func RenderDemo(w io.Writer, files []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<script src=%q></script>\n\n", PlayerScript)
	b.WriteString(demoStyle)
	b.WriteString("\n")
	for _, name := range files {
		fmt.Fprintf(&b, "<lottie-player autoplay loop mode=\"normal\" src=\"./%s\"></lottie-player>\n", html.EscapeString(name))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write demo page: %w", err)
	}
	return nil
}
