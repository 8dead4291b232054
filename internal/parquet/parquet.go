// Package parquet exports contact listings to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hellperdev/contactbook/schema"
	"github.com/parquet-go/parquet-go"
)

// ContactRecord is the Parquet row shape for one exported contact.
type ContactRecord struct {
	// ID is the server-assigned contact identifier
	ID string `parquet:"id,snappy"`

	// Name is the contact's display name
	Name string `parquet:"name,snappy"`

	// PhoneNumber is the contact's phone number
	PhoneNumber string `parquet:"phone_number,snappy"`

	// CreatedAt is when the server created the contact (nullable)
	CreatedAt *time.Time `parquet:"created_at,optional,snappy"`

	// ExportedAt is when this export ran
	ExportedAt time.Time `parquet:"exported_at,snappy"`
}

// ToContactRecords converts contacts into Parquet rows, stamping each with
// the export time.
func ToContactRecords(contacts []schema.Contact) []ContactRecord {
	now := time.Now()
	records := make([]ContactRecord, 0, len(contacts))
	for _, c := range contacts {
		records = append(records, ContactRecord{
			ID:          c.ID,
			Name:        c.Name,
			PhoneNumber: c.PhoneNumber,
			CreatedAt:   c.CreatedAt,
			ExportedAt:  now,
		})
	}
	return records
}

// WriteContactsParquet writes the contact rows to a Parquet file. Parquet
// output always needs a real file path since the format is not streamable
// to a terminal.
func WriteContactsParquet(records []ContactRecord, outputPath string) error {
	if outputPath == "" {
		return errors.New("parquet output requires --output-file")
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the ContactRecord struct tags
	writer := parquet.NewGenericWriter[ContactRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
