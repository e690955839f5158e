package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"property-matcher/models"
)

// ReadProperties parses CSV in the export format. The header must match
// PropertyCSVHeader; the first bad row aborts the read.
func ReadProperties(r io.Reader) ([]models.Property, error) {
	rows, err := readRows(r, PropertyCSVHeader)
	if err != nil {
		return nil, err
	}
	out := make([]models.Property, 0, len(rows))
	for i, row := range rows {
		rec := propertyRecord{
			Name:        row[0],
			Address:     row[1],
			SellerName:  row[2],
			SellerPhone: row[3],
			SellerEmail: row[4],
			Price:       row[5],
			Tags:        splitTags(row[6]),
		}
		p, err := rec.toProperty()
		if err != nil {
			return nil, fmt.Errorf("csv: row %d: %w", i+2, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// ReadBuyers parses CSV in the buyer export format.
func ReadBuyers(r io.Reader) ([]models.Buyer, error) {
	rows, err := readRows(r, BuyerCSVHeader)
	if err != nil {
		return nil, err
	}
	out := make([]models.Buyer, 0, len(rows))
	for i, row := range rows {
		rec := buyerRecord{
			Name:   row[0],
			Phone:  row[1],
			Email:  row[2],
			Budget: row[3],
			Tags:   splitTags(row[4]),
		}
		b, err := rec.toBuyer()
		if err != nil {
			return nil, fmt.Errorf("csv: row %d: %w", i+2, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func ImportPropertiesFile(path string) ([]models.Property, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	return ReadProperties(f)
}

func ImportBuyersFile(path string) ([]models.Buyer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	return ReadBuyers(f)
}

func readRows(r io.Reader, header []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)
	cr.TrimLeadingSpace = true

	got, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("csv: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	for i := range header {
		if !strings.EqualFold(strings.TrimSpace(got[i]), header[i]) {
			return nil, fmt.Errorf("csv: unexpected header %q, want %q", got, header)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read rows: %w", err)
	}
	return rows, nil
}
