// Package patching replaces the marker-delimited badge region of a text document.
package patching

import (
	"fmt"
	"os"
	"strings"
)

// Status reports the outcome of an Apply call that did not fail.
type Status string

const (
	// StatusUpdated means the document was rewritten with new content.
	StatusUpdated Status = "updated"
	// StatusUnchanged means the new content was byte-identical and no write occurred.
	StatusUnchanged Status = "unchanged"
)

// MarkerError represents a document-structure fault: a required marker is
// absent, or the markers appear in the wrong order. It is fatal to the run,
// unlike fetch errors, and never results in a partial write.
type MarkerError struct {
	Path    string
	Message string
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("marker error in %s: %s", e.Path, e.Message)
}

// Apply replaces the region of the document at path strictly between
// startMarker and endMarker with section. The first occurrence of each
// marker is canonical; any later occurrences are plain text. Text outside
// the markers, and the marker lines themselves, are preserved byte-for-byte.
//
// When the resulting document equals the original, the file is left
// untouched and StatusUnchanged is returned.
func Apply(path, section, startMarker, endMarker string) (Status, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}
	content := string(data)

	start := strings.Index(content, startMarker)
	end := strings.Index(content, endMarker)
	switch {
	case start == -1:
		return "", &MarkerError{Path: path, Message: fmt.Sprintf("start marker %q not found", startMarker)}
	case end == -1:
		return "", &MarkerError{Path: path, Message: fmt.Sprintf("end marker %q not found", endMarker)}
	case end < start:
		return "", &MarkerError{Path: path, Message: "end marker appears before start marker"}
	}

	updated := content[:start+len(startMarker)] + "\n" + section + content[end:]
	if updated == content {
		return StatusUnchanged, nil
	}

	// Perm is only consulted on create; rewriting an existing document
	// keeps its mode.
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return "", fmt.Errorf("failed to write document %s: %w", path, err)
	}
	return StatusUpdated, nil
}
