package fetcher

import (
	"os/exec"

	"github.com/jmylchreest/docload/internal/logger"
)

var chromeCandidates = []string{
	"google-chrome-stable",
	"google-chrome",
	"chromium",
	"chromium-browser",
	"chrome",
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	"/Applications/Chromium.app/Contents/MacOS/Chromium",
	"/snap/bin/chromium",
	`C:\Program Files\Google\Chrome\Application\chrome.exe`,
	`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
}

// FindChromePath returns the first Chrome or Chromium binary found on PATH
// or in a well-known install location, or "" if there is none.
func FindChromePath() string {
	return findExecutable(chromeCandidates, exec.LookPath)
}

func findExecutable(candidates []string, lookPath func(string) (string, error)) string {
	for _, name := range candidates {
		if path, err := lookPath(name); err == nil {
			logger.Debug("found chrome binary", "name", name, "path", path)
			return path
		}
	}
	logger.Warn("no chrome binary found; dynamic fetch mode may not work")
	return ""
}
