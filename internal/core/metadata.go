package core

// metadata.go loads Power Cube metadata from the collection CSV.
//
// Expected layout (header row is always skipped, whatever it contains):
//
//	tokenID,name,description,fileName,hashPower[,...]
//	1,"Power Cube #1","A cube, charged",cube1.png,50
//
// The fileName column is read but not used: every record points at the
// shared PowerCubeImage.

import (
	"context"
	"os"
	"strings"

	"github.com/JonMunkholm/nftmeta/internal/logging"
)

// MinMetadataColumns is the number of columns a row needs to become a record.
const MinMetadataColumns = 5

// Column positions in the metadata CSV.
const (
	colTokenID = iota
	colName
	colDescription
	colFileName
	colHashPower
)

// LoadStats summarizes one pass over the metadata file.
type LoadStats struct {
	Rows     int `json:"rows"`     // non-blank data rows
	Accepted int `json:"accepted"` // rows that produced a record
	Rejected int `json:"rejected"` // rows with fewer than MinMetadataColumns fields
	Keys     int `json:"keys"`     // distinct token ids (duplicates overwrite)
}

// MetadataLoader reads the Power Cube metadata CSV.
type MetadataLoader struct {
	path string
}

// NewMetadataLoader returns a loader backed by the CSV file at path.
func NewMetadataLoader(path string) *MetadataLoader {
	return &MetadataLoader{path: path}
}

// Path returns the backing file path.
func (l *MetadataLoader) Path() string {
	return l.path
}

// Load reads the file and returns records keyed by the literal tokenID text.
// A missing or unreadable file is logged and yields an empty, non-nil map.
func (l *MetadataLoader) Load(ctx context.Context) map[string]MetadataRecord {
	records, _ := l.load(ctx)
	return records
}

// Lookup returns the record whose tokenID column equals id exactly.
func (l *MetadataLoader) Lookup(ctx context.Context, id string) (MetadataRecord, bool) {
	rec, ok := l.Load(ctx)[id]
	return rec, ok
}

// Stats reports how many rows the current file yields.
func (l *MetadataLoader) Stats(ctx context.Context) LoadStats {
	_, stats := l.load(ctx)
	return stats
}

func (l *MetadataLoader) load(ctx context.Context) (map[string]MetadataRecord, LoadStats) {
	logger := logging.WithFields(ctx, "file", l.path)
	records := make(map[string]MetadataRecord)

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Error("metadata file not found")
		} else {
			logger.Error("failed to read metadata file", "error", err)
		}
		return records, LoadStats{}
	}

	stats := parseMetadata(string(data), records)
	logger.Debug("metadata loaded",
		"rows", stats.Rows,
		"accepted", stats.Accepted,
		"rejected", stats.Rejected,
	)
	return records, stats
}

// parseMetadata fills records from CSV content and returns row counts.
func parseMetadata(content string, records map[string]MetadataRecord) LoadStats {
	var stats LoadStats

	lines := strings.Split(content, "\n")
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		stats.Rows++

		cols := ParseCSVLine(line)
		if len(cols) < MinMetadataColumns {
			stats.Rejected++
			continue
		}

		stats.Accepted++
		records[cols[colTokenID]] = powerCubeRecord(
			cols[colName],
			cols[colDescription],
			cols[colHashPower],
		)
	}

	stats.Keys = len(records)
	return stats
}
