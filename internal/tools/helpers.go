// Package tools implements the MCP tool handlers for the business case
// workflow.
//
// Each tool is a struct that receives its dependencies at construction and
// exposes a Definition for registration plus a Handle compatible with
// mcp-go's CallToolRequest signature. Tools depend on interfaces
// (config.Store, templates.Renderer) rather than concretions; the history
// store may be nil and every tool that uses it degrades gracefully.
package tools

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bordenet/business-justification-assistant/internal/config"
	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument from a tool request. JSON numbers
// arrive as float64.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// findCaseRoot walks up from the current working directory looking for an
// existing bja/case.json. If none is found, returns cwd so case_init can
// create one there.
func findCaseRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	current := dir
	for {
		if _, err := os.Stat(config.ConfigPath(current)); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return dir, nil
		}
		current = parent
	}
}

// readPhaseFile reads a phase's markdown artifact. A missing file is not
// an error; the phase just has no content yet.
func readPhaseFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// writePhaseFile writes a phase's markdown artifact, creating the case
// directory as needed.
func writePhaseFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating case dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
