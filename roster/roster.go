package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/guestlist/guest"
)

// Version is the only document version understood by Decode.
const Version = 1

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Sentinel errors for document loading.
var (
	// ErrUnsupportedVersion indicates a document version other than Version.
	ErrUnsupportedVersion = errors.New("roster: unsupported version")

	// ErrUnsupportedFormat indicates an unknown encoding or file extension.
	ErrUnsupportedFormat = errors.New("roster: unsupported format")

	// ErrDecode wraps syntax and type errors from the underlying decoder.
	ErrDecode = errors.New("roster: decode failed")
)

// Document is the on-disk representation of a guest graph.
type Document struct {
	Version int             `json:"version" yaml:"version"`
	People  []*guest.Person `json:"people" yaml:"people"`
}

// FormatFromPath derives the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: extension of %q", ErrUnsupportedFormat, path)
	}
}

// Load opens path and decodes it according to its extension.
func Load(path string) ([]*guest.Person, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: open %s: %w", path, err)
	}
	defer f.Close()

	people, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return people, nil
}

// Decode reads one document from r. People are returned in document order.
func Decode(r io.Reader, format Format) ([]*guest.Person, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	for i, p := range doc.People {
		if err := guest.Validate(p); err != nil {
			return nil, fmt.Errorf("roster: person #%d: %w", i, err)
		}
	}

	return doc.People, nil
}

// Encode writes people as a versioned document.
func Encode(w io.Writer, format Format, people []*guest.Person) error {
	doc := Document{Version: Version, People: people}
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("roster: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("roster: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
