package export

import (
	"errors"
	"fmt"
	"strings"
)

type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	PDF  Format = "pdf"
	XLSX Format = "xlsx"
)

var ErrUnknownFormat = errors.New("unknown export format")

const (
	defaultBaseName = "expense-export"
	fixedOverhead   = 512
	defaultRowBytes = 100
	kilobyte        = 1024
	megabyte        = kilobyte * kilobyte
)

var bytesPerRow = map[Format]int{
	CSV:  80,
	XLSX: 150,
	JSON: 200,
	PDF:  500,
}

func Formats() []Format {
	return []Format{CSV, JSON, PDF, XLSX}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case CSV, JSON, PDF, XLSX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ParseFormats parses a comma separated list such as "csv,pdf".
func ParseFormats(s string) ([]Format, error) {
	var formats []Format
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

func (f Format) Extension() string {
	return string(f)
}

// Filename returns "<base>.<ext>", defaulting the base name when blank.
func Filename(base string, f Format) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = defaultBaseName
	}
	return base + "." + f.Extension()
}

// EstimateFileSize approximates the artifact size in bytes. For display only.
func EstimateFileSize(count int, f Format) int {
	perRow, ok := bytesPerRow[f]
	if !ok {
		perRow = defaultRowBytes
	}
	return count*perRow + fixedOverhead
}

// FormatFileSize renders a byte count as B, KB or MB.
func FormatFileSize(bytes int) string {
	switch {
	case bytes < kilobyte:
		return fmt.Sprintf("%d B", bytes)
	case bytes < megabyte:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kilobyte)
	default:
		return fmt.Sprintf("%.2f MB", float64(bytes)/megabyte)
	}
}
