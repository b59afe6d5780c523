package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vitalvision/vitalvision/internal/textutil"
)

// DefaultLabelColumn is the header of the disease label column.
const DefaultLabelColumn = "disease"

// DefaultTable is the SQLite table read when the source is a database.
const DefaultTable = "records"

// Options selects the label column and, for SQLite sources, the table.
type Options struct {
	LabelColumn string
	Table       string
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.LabelColumn) == "" {
		o.LabelColumn = DefaultLabelColumn
	}
	if strings.TrimSpace(o.Table) == "" {
		o.Table = DefaultTable
	}
	return o
}

// Dataset is the training view of a symptom table: one feature string and one
// encoded label per row, aligned by index.
type Dataset struct {
	// Source is the path the rows were read from.
	Source string

	// Symptoms are the symptom column names in table order.
	Symptoms []string

	// Features holds, per row, the space-joined names of truthy symptoms.
	Features []string

	// Labels holds, per row, the encoded disease label.
	Labels []int

	// Encoder maps labels to codes for this dataset.
	Encoder *LabelEncoder
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Features)
}

// Load reads the dataset at path. The format follows the file extension:
// .tsv is tab separated, .db/.sqlite/.sqlite3 is a SQLite database, anything
// else is parsed as comma separated values.
func Load(ctx context.Context, path string, opts Options) (*Dataset, error) {
	opts = opts.withDefaults()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(ctx, path, opts)
	case ".tsv":
		return loadDelimited(path, '\t', opts)
	default:
		return loadDelimited(path, ',', opts)
	}
}

func loadDelimited(path string, comma rune, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ErrMissingDataSource{Path: path, Err: err}
	}
	defer f.Close()
	return Read(f, comma, path, opts)
}

// Read parses delimited rows from r. The first row is the header. source is
// only used in errors and on the returned Dataset.
func Read(r io.Reader, comma rune, source string, opts Options) (*Dataset, error) {
	opts = opts.withDefaults()
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &ErrMissingDataSource{Path: source, Err: fmt.Errorf("read rows: %w", err)}
	}
	if len(rows) == 0 {
		return nil, &ErrInvalidDataset{Path: source, Reason: "no header row"}
	}
	return FromTable(source, rows[0], rows[1:], opts)
}

// FromTable builds a Dataset from a header and string cells. Cells missing
// from short rows are treated as falsy.
func FromTable(source string, header []string, rows [][]string, opts Options) (*Dataset, error) {
	opts = opts.withDefaults()

	labelCol := -1
	wantLabel := strings.ToLower(textutil.Normalize(opts.LabelColumn))
	for i, h := range header {
		if strings.ToLower(textutil.Normalize(h)) == wantLabel {
			labelCol = i
			break
		}
	}
	if labelCol < 0 {
		return nil, &ErrInvalidDataset{Path: source, Reason: fmt.Sprintf("label column %q not found", opts.LabelColumn)}
	}

	type column struct {
		index int
		name  string
	}
	var cols []column
	seen := make(map[string]bool)
	for i, h := range header {
		if i == labelCol {
			continue
		}
		name := textutil.SymptomKey(h)
		if name == "" {
			return nil, &ErrInvalidDataset{Path: source, Reason: fmt.Sprintf("column %d has an empty name", i+1)}
		}
		if seen[name] {
			return nil, &ErrInvalidDataset{Path: source, Reason: fmt.Sprintf("duplicate symptom column %q", name)}
		}
		seen[name] = true
		cols = append(cols, column{index: i, name: name})
	}
	if len(cols) == 0 {
		return nil, &ErrInvalidDataset{Path: source, Reason: "no symptom columns"}
	}
	if len(rows) == 0 {
		return nil, &ErrInvalidDataset{Path: source, Reason: "no data rows"}
	}

	features := make([]string, 0, len(rows))
	labels := make([]string, 0, len(rows))
	for n, row := range rows {
		label := ""
		if labelCol < len(row) {
			label = textutil.Normalize(row[labelCol])
		}
		if label == "" {
			return nil, &ErrInvalidDataset{Path: source, Reason: fmt.Sprintf("row %d has an empty label", n+2)}
		}
		var present []string
		for _, c := range cols {
			if c.index < len(row) && IsTruthy(row[c.index]) {
				present = append(present, c.name)
			}
		}
		features = append(features, strings.Join(present, " "))
		labels = append(labels, label)
	}

	enc := NewLabelEncoder(labels)
	codes := make([]int, len(labels))
	for i, l := range labels {
		code, err := enc.Encode(l)
		if err != nil {
			return nil, err
		}
		codes[i] = code
	}

	symptoms := make([]string, len(cols))
	for i, c := range cols {
		symptoms[i] = c.name
	}
	return &Dataset{
		Source:   source,
		Symptoms: symptoms,
		Features: features,
		Labels:   codes,
		Encoder:  enc,
	}, nil
}

// IsTruthy reports whether an indicator cell marks a symptom as present.
func IsTruthy(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "1", "1.0", "true", "t", "yes", "y":
		return true
	}
	return false
}

// IsMissing reports whether err means the data source could not be read.
func IsMissing(err error) bool {
	var missing *ErrMissingDataSource
	return errors.As(err, &missing)
}
