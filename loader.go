package bottega

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// DefaultStoreFile is the name of the store file when none is configured.
const DefaultStoreFile = "store_data.json"

// LoadLedger opens and decodes the store file at path.
//
// A missing file is not an error: it yields an empty ledger.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("store %q does not exist, starting with an empty ledger", path)
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open store %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode store %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger writes the whole ledger to path.
//
// The content is first written to a temporary file in the same directory and
// then renamed over path, so that path always holds a complete store.
func SaveLedger(path string, ledger *Ledger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for store %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary store for %q: %w", path, err)
	}
	tmpName := tmp.Name()
	// no-op once the rename succeeded
	defer os.Remove(tmpName)

	if err := EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode store %q: %w", path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("could not set store %q permissions: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write store %q: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("could not replace store %q: %w", path, err)
	}
	log.Printf("saved %d products and %d sales to %q", ledger.Len(), len(ledger.sales), path)
	return nil
}
