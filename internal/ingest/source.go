package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/gorewood/moodmark/internal/journal"
)

// Row is one data record of the export.
type Row struct {
	// Line is the 1-based line the record starts on.
	Line int
	// Values maps column names to cells. Columns without a cell are absent.
	Values journal.Row
	// Extra holds cells beyond the header's columns.
	Extra []string
}

// RowSource yields rows until it returns io.EOF.
type RowSource interface {
	Next() (Row, error)
}

// SliceSource serves rows from memory.
type SliceSource struct {
	rows []Row
	pos  int
}

// NewSliceSource creates a source over rows.
func NewSliceSource(rows ...Row) *SliceSource {
	return &SliceSource{rows: rows}
}

// Next returns the next row or io.EOF.
func (s *SliceSource) Next() (Row, error) {
	if s.pos >= len(s.rows) {
		return Row{}, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}

// CSVSource decodes a CSV export whose first record is the header.
type CSVSource struct {
	reader *csv.Reader
	header []string
	closer io.Closer
}

// NewCSVSource reads and validates the header of r. Every name in journal.Columns
// must be present; a missing one returns *HeaderError. Extra columns are kept.
func NewCSVSource(r io.Reader) (*CSVSource, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	// Free text such as `a 5" screen` carries bare quotes.
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &HeaderError{Missing: slices.Clone(journal.Columns)}
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		header[i] = name
	}

	var missing []string
	for _, column := range journal.Columns {
		if !slices.Contains(header, column) {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, &HeaderError{Missing: missing}
	}

	return &CSVSource{reader: reader, header: header}, nil
}

// Open expands path (~ and environment variables) and opens it as a CSVSource.
// Every failure is returned as *JournalUnreadableError. Callers must Close the source.
func Open(path string) (*CSVSource, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, &JournalUnreadableError{Path: path, Err: err}
	}
	file, err := os.Open(expanded)
	if err != nil {
		return nil, &JournalUnreadableError{Path: expanded, Err: err}
	}
	src, err := NewCSVSource(file)
	if err != nil {
		_ = file.Close()
		return nil, &JournalUnreadableError{Path: expanded, Err: err}
	}
	src.closer = file
	return src, nil
}

// ExpandPath expands environment variables and a leading ~ in path.
func ExpandPath(path string) (string, error) {
	return homedir.Expand(os.ExpandEnv(path))
}

// Header returns the decoded column names.
func (s *CSVSource) Header() []string {
	return slices.Clone(s.header)
}

// Next decodes the next record. A record that cannot be parsed is returned as
// *MalformedRowError and reading may continue; a failing reader is returned as
// *JournalUnreadableError.
func (s *CSVSource) Next() (Row, error) {
	record, err := s.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return Row{}, &MalformedRowError{Line: parseErr.StartLine, Err: parseErr.Err}
		}
		return Row{}, &JournalUnreadableError{Err: err}
	}
	line, _ := s.reader.FieldPos(0)

	row := Row{Line: line, Values: make(journal.Row, len(s.header))}
	for i, cell := range record {
		if i >= len(s.header) {
			row.Extra = append(row.Extra, record[i:]...)
			break
		}
		row.Values[s.header[i]] = cell
	}
	return row, nil
}

// Close closes the underlying file when the source was opened with Open.
func (s *CSVSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
