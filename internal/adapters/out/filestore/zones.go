package filestore

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"

	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"
)

// LoadZones reads zones.csv. The file must carry a header naming the raw and
// canonical columns; extra columns are ignored. Values are trimmed and
// stripped of surrounding quotes the CSV reader did not consume.
func (s *Store) LoadZones(_ context.Context) ([]zone.Entry, error) {
	data, err := s.readInput(ZonesFile)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(ZonesFile, err)
	}

	rawCol, canonCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "raw":
			rawCol = i
		case "canonical":
			canonCol = i
		}
	}
	if rawCol < 0 || canonCol < 0 {
		return nil, errs.NewValueIsInvalidError(ZonesFile + " header")
	}

	var entries []zone.Entry
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(ZonesFile, err)
		}
		if rawCol >= len(record) || canonCol >= len(record) {
			return nil, errs.NewValueIsInvalidError(ZonesFile + " row")
		}
		entries = append(entries, zone.Entry{
			Raw:       cleanCell(record[rawCol]),
			Canonical: cleanCell(record[canonCol]),
		})
	}
	return entries, nil
}

func cleanCell(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
