package leads

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Recognized header names. Matching is case-sensitive to mirror the lead
// file format operators already use.
const (
	colCompany  = "co_name"
	colWebsite  = "website"
	colEmail    = "email"
	colKeywords = "keywords"
	colName     = "Name"
)

// ParseCSV reads a lead table from CSV. The first record is the header;
// unrecognized columns are ignored and missing recognized columns yield
// empty strings per row. Field values are trimmed and the display name
// defaults to the company name.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("leads: reading header: %w", err)
	}

	index := map[string]int{}
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	var rows []Lead
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leads: reading row %d: %w", len(rows)+1, err)
		}

		lead := Lead{
			Company:  field(record, index, colCompany),
			Website:  field(record, index, colWebsite),
			Email:    field(record, index, colEmail),
			Keywords: field(record, index, colKeywords),
			Name:     field(record, index, colName),
		}
		if lead.Name == "" {
			lead.Name = lead.Company
		}
		rows = append(rows, lead)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return &Table{rows: rows}, nil
}

func field(record []string, index map[string]int, col string) string {
	i, ok := index[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
