// Package report renders normalized cluster inventory into a PDF or HTML document.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Orkogithub/nutanix-cluster-info/pkg/inventory"
)

// Output formats.
const (
	FormatPDF  = "pdf"
	FormatHTML = "html"
)

// Options controls how and where a report is rendered.
type Options struct {
	// Format is FormatPDF or FormatHTML.
	Format string

	// OutputDir receives the report. It is created if missing.
	OutputDir string

	// TemplatePath overrides the built-in HTML template.
	TemplatePath string

	// PageSize is "a4" or "letter".
	PageSize string
	Font     string
	FontSize float64
}

// Render writes the report and returns its path.
//
// The document is written to a temporary file next to the destination and
// renamed into place, so the final path only ever holds a complete report.
func Render(opts Options, meta Meta, fields *inventory.Fields) (string, error) {
	if fields == nil {
		return "", errors.New("no inventory to render")
	}

	var write func(io.Writer) error
	switch opts.Format {
	case FormatHTML:
		tmpl, err := LoadTemplate(opts.TemplatePath)
		if err != nil {
			return "", err
		}
		doc := Substitute(tmpl, Placeholders(meta, fields))
		write = func(w io.Writer) error {
			_, err := io.WriteString(w, doc)
			return err
		}
	case FormatPDF:
		write = func(w io.Writer) error {
			return writePDF(w, opts, meta, fields)
		}
	default:
		return "", fmt.Errorf("unsupported report format %q", opts.Format)
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, FileName(meta.GeneratedAt, fields.ClusterName, opts.Format))
	if err := writeFileAtomic(path, write); err != nil {
		return "", err
	}
	return path, nil
}

// writeFileAtomic writes through a temporary file in the same directory and
// renames it to path. Unless the rename happened, the temporary file is
// removed, including when write panics.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	renamed := false
	defer func() {
		if !renamed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync report: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move report into place: %w", err)
	}
	renamed = true
	return nil
}
