// Package dataset loads academic records from JSON, YAML and TOML files
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/davidschrooten/open-academic-records/internal/logger"
	"github.com/davidschrooten/open-academic-records/internal/records"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrPathNotFound      = errors.New("dataset path not found")
)

// Format identifies a dataset encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Options controls how a dataset is read
type Options struct {
	// Path selects the records inside the document, e.g. "semesters" or
	// "data.subjects". Empty means the document root.
	Path string
	// Format overrides detection from the file extension
	Format Format
}

// FormatFor detects the format from a file extension
func FormatFor(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
}

// Load reads the records stored at filename
func Load(filename string, opts Options) ([]records.Record, error) {
	format := opts.Format
	if format == "" {
		var err error
		if format, err = FormatFor(filename); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	recs, err := Parse(data, format, opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	logger.L().Named("dataset").Debug("loaded dataset",
		zap.String("file", filename),
		zap.String("format", string(format)),
		zap.String("path", opts.Path),
		zap.Int("records", len(recs)),
	)
	return recs, nil
}

// Parse decodes data and returns the records found at path. A single object
// yields one record.
func Parse(data []byte, format Format, path string) ([]records.Record, error) {
	var doc any
	switch format {
	case FormatJSON:
		if !gjson.ValidBytes(data) {
			return nil, errors.New("invalid json")
		}
		result := gjson.ParseBytes(data)
		if path != "" {
			result = result.Get(path)
			if !result.Exists() {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}
		}
		return toRecords(result.Value())

	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}

	case FormatTOML:
		var table map[string]any
		if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&table); err != nil {
			return nil, fmt.Errorf("invalid toml: %w", err)
		}
		doc = table

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	doc, err := walk(doc, path)
	if err != nil {
		return nil, err
	}
	return toRecords(doc)
}

// walk follows a dotted path through nested maps and lists
func walk(doc any, path string) (any, error) {
	if path == "" {
		return doc, nil
	}

	cur := doc
	for _, key := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[key]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}
			cur = next
		case []any:
			var idx int
			if _, err := fmt.Sscanf(key, "%d", &idx); err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}
			cur = node[idx]
		default:
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
	}
	return cur, nil
}

func toRecords(v any) ([]records.Record, error) {
	switch node := v.(type) {
	case map[string]any:
		return []records.Record{node}, nil
	case []any:
		out := make([]records.Record, 0, len(node))
		for i, item := range node {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("item %d is %T, not an object", i, item)
			}
			out = append(out, m)
		}
		return out, nil
	case []map[string]any:
		out := make([]records.Record, 0, len(node))
		for _, m := range node {
			out = append(out, m)
		}
		return out, nil
	case nil:
		return []records.Record{}, nil
	}
	return nil, fmt.Errorf("expected object or list of objects, got %T", v)
}

// Decode converts loosely typed records into domain values using their json
// field names. Numeric strings and similar are coerced.
func Decode[T any](recs []records.Record) ([]T, error) {
	out := make([]T, len(recs))
	for i, rec := range recs {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "json",
			WeaklyTypedInput: true,
			Result:           &out[i],
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create decoder: %w", err)
		}
		if err := decoder.Decode(map[string]any(rec)); err != nil {
			return nil, fmt.Errorf("failed to decode record %d: %w", i, err)
		}
	}
	return out, nil
}
