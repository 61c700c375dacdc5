// Package langdetect inspects candidate source files before they are
// formatted. It uses go-enry to tell assembler sources apart from binary
// blobs and vendored trees that happen to share an extension.
package langdetect

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-enry/go-enry/v2"
)

// sniffLen is how much of a file is read to decide whether it is binary.
const sniffLen = 8000

// Unknown is reported when the extension maps to no known language.
const Unknown = "Text"

// Info is what is known about a candidate file before formatting it.
type Info struct {
	// Language is the linguist name for the file extension. Extensions
	// shared by several languages report the first candidate.
	Language string

	// Binary is set when the head of the file looks like binary data.
	Binary bool

	// Vendored is set when the path lies in a conventional third-party tree.
	Vendored bool

	// Generated is set when the file declares itself machine-generated.
	Generated bool
}

// Skip reports whether the file should not be formatted. Vendored files
// are only skipped when skipVendored is set.
func (i Info) Skip(skipVendored bool) bool {
	return i.Binary || i.Generated || (skipVendored && i.Vendored)
}

// Inspect classifies a file from its path relative to the project root and
// the first bytes of its content.
func Inspect(relPath string, head []byte) Info {
	lang, _ := enry.GetLanguageByExtension(relPath)
	if lang == "" {
		lang = Unknown
	}
	return Info{
		Language:  lang,
		Binary:    enry.IsBinary(head),
		Vendored:  enry.IsVendor(relPath),
		Generated: enry.IsGenerated(relPath, head),
	}
}

// ReadHead returns up to the first 8000 bytes of the file at path.
func ReadHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf[:n], nil
}
