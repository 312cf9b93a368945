package script

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultDir is where menu scripts are looked up when no path is given.
var DefaultDir = filepath.Join("internal", "scripts")

// GenerateScriptPath creates a timestamped script filename in dir
func GenerateScriptPath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("menu_%s.yaml", timestamp))
}

// FindLatestScript finds the most recently modified script in dir
func FindLatestScript(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read scripts directory: %w", err)
	}

	var scripts []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && (strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			scripts = append(scripts, filepath.Join(dir, name))
		}
	}

	if len(scripts) == 0 {
		return "", fmt.Errorf("no script files found in %s", dir)
	}

	// Newest first
	sort.Slice(scripts, func(i, j int) bool {
		infoI, _ := os.Stat(scripts[i])
		infoJ, _ := os.Stat(scripts[j])
		return infoI.ModTime().After(infoJ.ModTime())
	})

	return scripts[0], nil
}
