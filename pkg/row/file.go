package row

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Spec is the serialized form of a row.
type Spec struct {
	Key        string `json:"key" yaml:"key"`
	Label      string `json:"label" yaml:"label"`
	Icon       string `json:"icon" yaml:"icon"`
	SourceType string `json:"sourceType" yaml:"sourceType"`
	SubType    string `json:"subType" yaml:"subType"`
	// TimeField is the dotted path of the timestamp inside each item.
	TimeField string `json:"timeField" yaml:"timeField"`
	Items     []any  `json:"items" yaml:"items"`
}

// Row builds the row described by s.
func (s Spec) Row() Row {
	label := s.Label
	if label == "" {
		label = s.Key
	}
	field := s.TimeField
	if field == "" {
		field = "time"
	}
	return Row{
		Key:         s.Key,
		Label:       label,
		IconID:      s.Icon,
		SourceType:  s.SourceType,
		SubType:     s.SubType,
		Items:       s.Items,
		ExtractTime: FieldExtractor(field),
	}
}

// Format of a rows file.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf picks the format from the file extension, JSON unless it is .yaml
// or .yml.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Decode reads a list of row specs.
func Decode(r io.Reader, format Format) ([]Row, error) {
	var specs []Spec
	switch format {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&specs); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to decode rows: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&specs); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to decode rows: %w", err)
		}
	}
	rows := make([]Row, 0, len(specs))
	for _, s := range specs {
		rows = append(rows, s.Row())
	}
	return rows, nil
}

// Load reads the rows file at path.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, FormatOf(path))
}

// FieldExtractor returns an ExtractTime that walks a dotted path of map keys
// into a decoded item, e.g. "event.occurrenceTimestamp".
func FieldExtractor(path string) func(any) (string, bool) {
	keys := strings.Split(path, ".")
	return func(item any) (string, bool) {
		v := item
		for _, k := range keys {
			switch m := v.(type) {
			case map[string]any:
				v = m[k]
			case map[any]any:
				v = m[k]
			default:
				return "", false
			}
		}
		switch t := v.(type) {
		case string:
			return t, t != ""
		case time.Time:
			return t.Format("2006-01-02T15:04:05.999999999Z07:00"), true
		}
		return "", false
	}
}
