package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/jgoulah/toucompare/pkg/models"
)

// headerPrefix identifies the real header row inside the export
const headerPrefix = "TYPE,DATE,"

// usageRowType marks the rows we care about; the export mixes in rows for
// other meters and summaries
const usageRowType = "Electric usage"

var expectedHeader = []string{
	"TYPE", "DATE", "START TIME", "END TIME", "IMPORT (kWh)", "EXPORT (kWh)", "NOTES",
}

// Column positions within a data row
const (
	colType      = 0
	colStartTime = 2
	colEndTime   = 3
	colImport    = 4
	colExport    = 5
)

// ReadUsageFile parses a Green Button usage export into usage entries,
// in file order.
func ReadUsageFile(path string) ([]models.UsageEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening usage file: %w", err)
	}
	defer f.Close()

	entries, err := ReadUsage(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return entries, nil
}

// ReadUsage parses usage export content. Exports start with a variable
// number of metadata lines before the header row; everything up to the
// header is discarded.
func ReadUsage(r io.Reader) ([]models.UsageEntry, error) {
	reader := bufio.NewReader(r)

	var headerLine string
	skipped := 0
	for {
		line, err := reader.ReadString('\n')
		if strings.HasPrefix(line, headerPrefix) {
			headerLine = line
			break
		}
		if err == io.EOF {
			return nil, fmt.Errorf("no header row found: expected a line starting with %q", headerPrefix)
		}
		if err != nil {
			return nil, fmt.Errorf("reading usage file: %w", err)
		}
		skipped++
	}
	log.Debugf("Skipped %d preamble lines before header row", skipped)

	// The export contains rows of varying width, so field counts are not
	// enforced by the reader.
	csvReader := csv.NewReader(io.MultiReader(strings.NewReader(headerLine), reader))
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}
	if !slices.Equal(header, expectedHeader) {
		return nil, fmt.Errorf("unexpected usage CSV columns %v, expected %v", header, expectedHeader)
	}

	var entries []models.UsageEntry
	row := 1
	ignored := 0
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", row+1, err)
		}
		row++

		if len(record) == 0 || record[colType] != usageRowType {
			ignored++
			continue
		}

		entry, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		entries = append(entries, entry)
	}
	log.Debugf("Parsed %d usage entries (%d other rows ignored)", len(entries), ignored)

	return entries, nil
}

func parseRow(record []string) (models.UsageEntry, error) {
	if len(record) <= colExport {
		return models.UsageEntry{}, fmt.Errorf("electric usage row has %d fields, need at least %d",
			len(record), colExport+1)
	}

	start, err := parseTimeOfDay(record[colStartTime])
	if err != nil {
		return models.UsageEntry{}, fmt.Errorf("invalid start time %q: %w", record[colStartTime], err)
	}
	end, err := parseTimeOfDay(record[colEndTime])
	if err != nil {
		return models.UsageEntry{}, fmt.Errorf("invalid end time %q: %w", record[colEndTime], err)
	}
	imported, err := decimal.NewFromString(record[colImport])
	if err != nil {
		return models.UsageEntry{}, fmt.Errorf("invalid imported kWh %q: %w", record[colImport], err)
	}
	exported, err := decimal.NewFromString(record[colExport])
	if err != nil {
		return models.UsageEntry{}, fmt.Errorf("invalid exported kWh %q: %w", record[colExport], err)
	}

	return models.UsageEntry{
		StartTime: start,
		EndTime:   end,
		Imported:  imported,
		Exported:  exported,
	}, nil
}

// parseTimeOfDay parses a wall-clock time of day. Exports write times as
// HH:MM:SS or HH:MM depending on the utility's export version.
func parseTimeOfDay(s string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}
