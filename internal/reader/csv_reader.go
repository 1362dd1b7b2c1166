package reader

import (
	"encoding/csv"
	"io"
)

type CSVReader struct {
	reader io.Reader
}

func NewCSVReader(reader io.Reader) *CSVReader {
	return &CSVReader{
		reader: reader,
	}
}

func (cr *CSVReader) Read() ([]map[string]string, error) {
	_, records, err := cr.ReadWithHeader()
	return records, err
}

// ReadWithHeader consumes the whole CSV and returns the header row next to
// the records, so callers can validate the schema even when there are no
// data rows.
func (cr *CSVReader) ReadWithHeader() ([]string, []map[string]string, error) {
	csvReader := csv.NewReader(cr.reader)

	headers, err := csvReader.Read()
	if err != nil {
		return nil, nil, err
	}

	var records []map[string]string
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		record := make(map[string]string, len(headers))
		for i, h := range headers {
			record[h] = row[i]
		}
		records = append(records, record)
	}

	return headers, records, nil
}
