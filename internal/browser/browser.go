package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// start launches the platform opener without waiting for it.
var start = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Open hands rawURL to the platform opener, which shows it in a new browser
// tab or window. Only http and https URLs are passed on.
func Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}

	name, args := opener(runtime.GOOS)
	if err := start(name, append(args, rawURL)...); err != nil {
		return fmt.Errorf("opening %s: %w", rawURL, err)
	}
	return nil
}

func opener(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		// rundll32 avoids cmd /c start and its shell interpretation
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
