package filestore

import (
	"context"
	"strings"

	"logistics/internal/core/domain/services"
)

// LoadLogEntries reads log.csv. The log is driver-reported and dirty, so
// parsing is deliberately forgiving: blank lines, a header row and rows
// without exactly three comma-separated fields are dropped without error.
func (s *Store) LoadLogEntries(_ context.Context) ([]services.LogEntry, error) {
	data, err := s.readInput(DeliveryLogFile)
	if err != nil {
		return nil, err
	}

	entries := []services.LogEntry{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if strings.ToLower(parts[0]) == "orderid" {
			continue
		}
		entries = append(entries, services.LogEntry{
			OrderID:     parts[0],
			CourierID:   parts[1],
			DeliveredAt: parts[2],
		})
	}
	return entries, nil
}
