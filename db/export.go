package db

import (
	"context"
	"encoding/csv"
	"fmt"
)

// ExportCSV writes the result with a header row to a local path, file:// URL
// or s3://bucket/key.
func ExportCSV(ctx context.Context, result QueryResult, path string, cfg *S3Config) (err error) {
	w, err := openRemoteWriter(ctx, path, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := w.Close(); err == nil {
			err = closeErr
		}
	}()

	writer := csv.NewWriter(w)
	if err := writer.Write(result.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(result.Data); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
