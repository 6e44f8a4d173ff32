// Package csvutil encodes and decodes worker rows in the fixed CSV layout
// used by import and export: name, contact, email, address, status, hireDate.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bukidworks/farm_ledger_app/internal/core/domain"
	"github.com/bukidworks/farm_ledger_app/internal/dto"
)

const dateLayout = "2006-01-02"

// Columns is the fixed column order for worker CSV files.
var Columns = []string{"name", "contact", "email", "address", "status", "hireDate"}

// ParseWorkers reads worker rows from r. Rows that cannot be parsed are
// reported as row errors and skipped; one bad row never rejects the file.
func ParseWorkers(r io.Reader, hasHeader bool, delimiter rune) ([]dto.CreateWorkerRequest, []dto.CSVRowError) {
	reader := csv.NewReader(r)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.FieldsPerRecord = -1 // Row length is checked per row below.
	reader.TrimLeadingSpace = true

	var (
		requests []dto.CreateWorkerRequest
		rowErrs  []dto.CSVRowError
		line     int
	)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrs = append(rowErrs, dto.CSVRowError{Line: line, Message: err.Error()})
			continue
		}
		if hasHeader && line == 1 {
			continue
		}
		if len(record) != len(Columns) {
			rowErrs = append(rowErrs, dto.CSVRowError{
				Line:    line,
				Message: fmt.Sprintf("expected %d columns, got %d", len(Columns), len(record)),
			})
			continue
		}

		req := dto.CreateWorkerRequest{
			Name:     strings.TrimSpace(record[0]),
			Contact:  strings.TrimSpace(record[1]),
			Address:  strings.TrimSpace(record[3]),
			Status:   strings.TrimSpace(record[4]),
			HireDate: strings.TrimSpace(record[5]),
		}
		if email := strings.TrimSpace(record[2]); email != "" {
			req.Email = &email
		}
		requests = append(requests, req)
	}

	return requests, rowErrs
}

// EncodeWorkers renders workers as CSV text with a header row. includeFields
// selects a subset of Columns; an empty list means all columns. Unknown field
// names are ignored.
func EncodeWorkers(workers []domain.Worker, includeFields []string) (string, error) {
	fields := selectFields(includeFields)

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(fields); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, worker := range workers {
		record := make([]string, len(fields))
		for i, f := range fields {
			record[i] = fieldValue(worker, f)
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV row for worker %s: %w", worker.WorkerID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return sb.String(), nil
}

// ParseDate parses an ISO-8601 date string as used in CSV files.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDate renders t as an ISO-8601 date string.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func selectFields(includeFields []string) []string {
	if len(includeFields) == 0 {
		return Columns
	}
	wanted := make(map[string]bool, len(includeFields))
	for _, f := range includeFields {
		wanted[f] = true
	}
	// Preserve the fixed column order regardless of request order.
	fields := make([]string, 0, len(Columns))
	for _, c := range Columns {
		if wanted[c] {
			fields = append(fields, c)
		}
	}
	if len(fields) == 0 {
		return Columns
	}
	return fields
}

func fieldValue(w domain.Worker, field string) string {
	switch field {
	case "name":
		return w.Name
	case "contact":
		return w.Contact
	case "email":
		if w.Email != nil {
			return *w.Email
		}
		return ""
	case "address":
		return w.Address
	case "status":
		return string(w.Status)
	case "hireDate":
		return FormatDate(w.HireDate)
	default:
		return ""
	}
}
