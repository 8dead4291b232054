// Package outwriter renders contact listings in the configured output format.
package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/hellperdev/contactbook/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// DateFormat is the rendering format for contact creation timestamps.
const DateFormat = "2006-01-02"

// WriteContacts renders the contacts as a table, CSV, or JSON.
func WriteContacts(contacts []schema.Contact, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONContacts(contacts, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVContacts(contacts, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printTableContacts(contacts, cfg); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// printJSONContacts handles opening the target file and writing JSON.
func printJSONContacts(contacts []schema.Contact, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() {
		if file != os.Stdout {
			_ = file.Close()
		}
	}()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(contacts); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 Wrote JSON to %s\n", cfg.OutputFile)
	}
	return nil
}

// printCSVContacts handles opening the target file and writing CSV.
func printCSVContacts(contacts []schema.Contact, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() {
		if file != os.Stdout {
			_ = file.Close()
		}
	}()

	w := csv.NewWriter(file)
	if err := writeCSVContacts(w, contacts); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 Wrote CSV to %s\n", cfg.OutputFile)
	}
	return nil
}

// writeCSVContacts writes the contact rows in CSV format.
func writeCSVContacts(w *csv.Writer, contacts []schema.Contact) error {
	if err := w.Write([]string{"id", "name", "phone_number", "created_at"}); err != nil {
		return err
	}
	for _, c := range contacts {
		rec := []string{
			c.ID,
			c.Name,
			c.PhoneNumber,
			formatCreatedAt(&c),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// printTableContacts generates and prints the human-readable table.
func printTableContacts(contacts []schema.Contact, cfg *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"ID", "Name", "Phone", "Created"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, c := range contacts {
		data = append(data, []string{
			c.ID,
			contract.TruncateText(c.Name, nameWidth),
			c.PhoneNumber,
			formatCreatedAt(&c),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Showing %d contacts\n", len(contacts))
	return nil
}

// GetMaxTableNameWidth calculates the maximum width for contact names in
// table output based on terminal width.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the ID, phone, and date columns with borders and
	// padding around each cell.
	available := termWidth - 45
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}

// formatCreatedAt renders the optional creation timestamp.
func formatCreatedAt(c *schema.Contact) string {
	if c.CreatedAt == nil {
		return ""
	}
	return c.CreatedAt.Format(DateFormat)
}
