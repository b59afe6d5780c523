package dataset

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `fever,cough,itching,rash,disease
1,1,0,0,Cold
1,0,0,0,Cold
0,0,1,1,Allergy
0,0,0,1,Allergy
1,1,0,0,Cold
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_CSVFeatureStrings(t *testing.T) {
	path := writeFile(t, "medical_data.csv", sampleCSV)

	ds, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"fever", "cough", "itching", "rash"}, ds.Symptoms)
	assert.Equal(t, []string{
		"fever cough",
		"fever",
		"itching rash",
		"rash",
		"fever cough",
	}, ds.Features)
	assert.Equal(t, 5, ds.Len())
	assert.Len(t, ds.Labels, ds.Len())
}

func TestLoad_FeatureStringsMatchTruthyColumns(t *testing.T) {
	path := writeFile(t, "medical_data.csv", sampleCSV)
	ds, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(sampleCSV), "\n")[1:]
	for i, line := range lines {
		cells := strings.Split(line, ",")
		var want []string
		for j, sym := range ds.Symptoms {
			if cells[j] == "1" {
				want = append(want, sym)
			}
		}
		assert.Equal(t, strings.Join(want, " "), ds.Features[i], "row %d", i)
	}
}

func TestLoad_LabelsAlignedWithEncoder(t *testing.T) {
	path := writeFile(t, "medical_data.csv", sampleCSV)
	ds, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Allergy", "Cold"}, ds.Encoder.Labels())
	want := []string{"Cold", "Cold", "Allergy", "Allergy", "Cold"}
	for i, code := range ds.Labels {
		label, err := ds.Encoder.Decode(code)
		require.NoError(t, err)
		assert.Equal(t, want[i], label)
	}
}

func TestLoad_TSVAndLabelColumnOption(t *testing.T) {
	content := "Diagnosis\tRunny Nose\tfever\nFlu\ttrue\tyes\nCold\tTRUE\tno\n"
	path := writeFile(t, "data.tsv", content)

	ds, err := Load(context.Background(), path, Options{LabelColumn: "diagnosis"})
	require.NoError(t, err)
	assert.Equal(t, []string{"runny_nose", "fever"}, ds.Symptoms)
	assert.Equal(t, []string{"runny_nose fever", "runny_nose"}, ds.Features)
}

func TestLoad_HeaderBOMAndShortRows(t *testing.T) {
	content := "\ufefffever,cough,disease\n1\n"
	_, err := Read(strings.NewReader(content), ',', "inline", Options{})
	var invalid *ErrInvalidDataset
	require.ErrorAs(t, err, &invalid, "short row has no label")

	content = "\ufeffdisease,fever,cough\nCold,1\n"
	ds, err := Read(strings.NewReader(content), ',', "inline", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"fever"}, ds.Features)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")
	_, err := Load(context.Background(), path, Options{})
	require.Error(t, err)

	var missing *ErrMissingDataSource
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, path, missing.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.True(t, IsMissing(err))
}

func TestLoad_InvalidDatasets(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"no label column", "fever,cough\n1,0\n"},
		{"no symptom columns", "disease\nCold\n"},
		{"no rows", "fever,disease\n"},
		{"empty label", "fever,disease\n1,\n"},
		{"duplicate symptom", "fever,Fever,disease\n1,1,Cold\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.content), ',', "inline", Options{})
			var invalid *ErrInvalidDataset
			require.ErrorAs(t, err, &invalid)
			assert.False(t, IsMissing(err))
		})
	}
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", " 1 ", "1.0", "true", "TRUE", "yes", "Y", "t"} {
		assert.True(t, IsTruthy(v), v)
	}
	for _, v := range []string{"0", "", "false", "no", "2", "0.0"} {
		assert.False(t, IsTruthy(v), v)
	}
}

func TestLabelEncoder_RoundTrip(t *testing.T) {
	enc := NewLabelEncoder([]string{"Common Cold", "Bronchitis", "Common Cold", "Allergic Reaction"})
	assert.Equal(t, 3, enc.Len())
	for _, label := range enc.Labels() {
		code, err := enc.Encode(label)
		require.NoError(t, err)
		got, err := enc.Decode(code)
		require.NoError(t, err)
		assert.Equal(t, label, got)
	}

	_, err := enc.Encode("Measles")
	require.Error(t, err)
	_, err = enc.Decode(3)
	require.Error(t, err)
	_, err = enc.Decode(-1)
	require.Error(t, err)
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medical.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE records (fever INTEGER, rash TEXT, disease TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO records VALUES (1, '0', 'Cold'), (0, '1', 'Allergy'), (NULL, 'true', 'Allergy')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	ds, err := Load(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"fever", "rash"}, ds.Symptoms)
	assert.Equal(t, []string{"fever", "rash", "rash"}, ds.Features)
	assert.Equal(t, []string{"Allergy", "Cold"}, ds.Encoder.Labels())

	_, err = Load(context.Background(), path, Options{Table: "missing_table"})
	assert.True(t, IsMissing(err))
}

func TestLoadSQLite_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.db")
	_, err := Load(context.Background(), path, Options{})
	assert.True(t, IsMissing(err))

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "loader must not create the database")
}
