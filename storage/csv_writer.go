package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"property-matcher/models"
)

var (
	PropertyCSVHeader = []string{"Name", "Address", "Seller Name", "Phone", "Email", "Price", "Tags"}
	BuyerCSVHeader    = []string{"Name", "Phone", "Email", "Budget", "Tags"}
)

// WriteProperties writes the header row followed by one row per property.
func WriteProperties(w io.Writer, properties []models.Property) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PropertyCSVHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, p := range properties {
		r := propertyToRecord(p)
		row := []string{
			r.Name,
			r.Address,
			r.SellerName,
			r.SellerPhone,
			r.SellerEmail,
			r.Price,
			p.Tags().String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteBuyers writes the header row followed by one row per buyer.
func WriteBuyers(w io.Writer, buyers []models.Buyer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(BuyerCSVHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, b := range buyers {
		r := buyerToRecord(b)
		row := []string{r.Name, r.Phone, r.Email, r.Budget, b.Tags().String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportPropertiesFile creates (or truncates) path and writes the properties.
// Intermediate directories are created automatically.
func ExportPropertiesFile(path string, properties []models.Property) error {
	return writeFile(path, func(w io.Writer) error { return WriteProperties(w, properties) })
}

func ExportBuyersFile(path string, buyers []models.Buyer) error {
	return writeFile(path, func(w io.Writer) error { return WriteBuyers(w, buyers) })
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &IOError{Op: "create output dir", Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create file", Path: path, Err: err}
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}
