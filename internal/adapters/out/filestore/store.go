// Package filestore implements the pipeline's ports against plain files:
// JSON snapshots and CSV tables in an inputs directory, JSON artifacts in an
// outputs directory. Structural problems (a missing file, unparseable JSON,
// a zone table without the expected header) are returned as errors; row-level
// dirt is passed through untouched so the domain layer can warn about it.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"logistics/internal/pkg/errs"
)

const (
	OrdersFile         = "orders.json"
	CouriersFile       = "couriers.json"
	ZonesFile          = "zones.csv"
	DeliveryLogFile    = "log.csv"
	CleanOrdersFile    = "clean_orders.json"
	PlanFile           = "plan.json"
	ReconciliationFile = "reconciliation.json"
)

// Store reads pipeline inputs from one directory and writes artifacts to
// another. It implements every source port and the report sink.
type Store struct {
	inputsDir  string
	outputsDir string
}

// NewStore creates a store over the given directories. The outputs directory
// is created on first write, not here.
func NewStore(inputsDir, outputsDir string) (*Store, error) {
	if inputsDir == "" {
		return nil, errs.NewValueIsRequiredError("inputsDir")
	}
	if outputsDir == "" {
		return nil, errs.NewValueIsRequiredError("outputsDir")
	}
	return &Store{inputsDir: inputsDir, outputsDir: outputsDir}, nil
}

func (s *Store) readInput(name string) ([]byte, error) {
	path := filepath.Join(s.inputsDir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errs.NewObjectNotFoundErrorWithCause("input file", path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func (s *Store) writeArtifact(name string, v any) error {
	if err := os.MkdirAll(s.outputsDir, 0o755); err != nil {
		return fmt.Errorf("create outputs dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	data = append(data, '\n')

	path := filepath.Join(s.outputsDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
