package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes rounds as CSV with a header row.
func WriteCSV(w io.Writer, rounds []Round) error {
	if rounds == nil {
		rounds = []Round{}
	}
	if err := gocsv.Marshal(rounds, w); err != nil {
		return fmt.Errorf("storage: cannot write csv: %w", err)
	}
	return nil
}
