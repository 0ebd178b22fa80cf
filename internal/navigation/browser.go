package navigation

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/pkg/browser"
)

func init() {
	// the opener's own output would land on the terminal map
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// BrowserOpener launches the system browser as a separate process.
type BrowserOpener struct {
	// Command overrides the platform default, e.g. "firefox".
	Command string
}

// Open hands url to the browser. With a Command set it does not wait for it to exit.
func (b BrowserOpener) Open(url string) error {
	if b.Command == "" {
		if err := browser.OpenURL(url); err != nil {
			return fmt.Errorf("navigation: failed to open browser: %w", err)
		}
		return nil
	}

	cmd := exec.Command(b.Command, url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("navigation: failed to start %s: %w", b.Command, err)
	}
	go cmd.Wait()
	return nil
}
