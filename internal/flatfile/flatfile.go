// Package flatfile is the CSV export read by the display page.
package flatfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"candidatescout/internal/candidate"
)

// Table is a CSV file as read back, rows are not validated against the header.
type Table struct {
	Header []string
	Rows   [][]string
}

// WriteTo writes the header followed by one row per candidate.
func WriteTo(w io.Writer, candidates []candidate.Candidate) error {
	writer := csv.NewWriter(w)
	err := writer.Write(candidate.Header())
	if err != nil {
		return err
	}
	for _, c := range candidates {
		err = writer.Write(c.Row())
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Write replaces the file at path with the exported candidates.
func Write(path string, candidates []candidate.Candidate) error {
	err := os.MkdirAll(filepath.Dir(path), 0777)
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	err = WriteTo(f, candidates)
	if err != nil {
		f.Close()
		return fmt.Errorf("export csv: %w", err)
	}
	return f.Close()
}

func ReadFrom(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, err
	}
	if len(records) == 0 {
		return Table{}, nil
	}
	return Table{
		Header: records[0],
		Rows:   records[1:],
	}, nil
}

func Read(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	defer f.Close()
	table, err := ReadFrom(f)
	if err != nil {
		return Table{}, fmt.Errorf("read csv %s: %w", path, err)
	}
	return table, nil
}
