package ps

import (
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nickyhof/SQLExplorer/core"
)

// StatementRecord is one executed statement of a committed batch.
type StatementRecord struct {
	Kind         string `json:"kind"`
	Position     int    `json:"position"`
	SQL          string `json:"sql"`
	Args         []any  `json:"args"`
	RowsAffected int64  `json:"rowsAffected"`
}

// Batch is the journal record of one successful commit of pending edits.
type Batch struct {
	ID           string            `json:"id"`
	Session      string            `json:"session"`
	Table        string            `json:"table"`
	Statements   []StatementRecord `json:"statements"`
	Inserted     int               `json:"inserted"`
	Updated      int               `json:"updated"`
	Deleted      int               `json:"deleted"`
	RowsAffected int64             `json:"rowsAffected"`
	CommittedAt  time.Time         `json:"committedAt"`
}

func (batch Batch) String() string {
	return fmt.Sprintf("Batch{ID: %s, Table: %s, Statements: %d}", batch.ID, batch.Table, len(batch.Statements))
}

// Message is the git commit message used for the batch.
func (batch Batch) Message() string {
	return fmt.Sprintf("%s: %d change(s)", batch.Table, len(batch.Statements))
}

func batchDir(table string) string {
	return strings.NewReplacer("/", "_", "\\", "_").Replace(table)
}

func batchPath(batch Batch) string {
	return path.Join(batchDir(batch.Table), fmt.Sprintf("%d-%s.json", batch.CommittedAt.UnixNano(), batch.ID))
}

// RecordBatch writes the batch as one journal commit. A missing ID or
// timestamp is filled in.
func (p *Persistence) RecordBatch(batch Batch, identity core.Identity) (Transaction, error) {
	if err := p.ensureInitialized(); err != nil {
		return Transaction{}, err
	}
	if batch.Table == "" {
		return Transaction{}, fmt.Errorf("batch has no table")
	}

	if batch.ID == "" {
		batch.ID = uuid.NewString()
	}
	if batch.CommittedAt.IsZero() {
		batch.CommittedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to encode batch: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.WriteFileDirect(batchPath(batch), data, identity, batch.Message())
}

// History returns the batches recorded for table, newest first.
func (p *Persistence) History(table string) ([]Batch, error) {
	if err := p.ensureInitialized(); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	dir := batchDir(table)
	entries, err := p.ListEntriesDirect(dir)
	if err != nil {
		return nil, err
	}

	batches := make([]Batch, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir || !strings.HasSuffix(entry.Name, ".json") {
			continue
		}

		data, err := p.ReadFileDirect(path.Join(dir, entry.Name))
		if err != nil {
			return nil, err
		}

		var batch Batch
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", entry.Name, err)
		}
		batches = append(batches, batch)
	}

	sort.SliceStable(batches, func(i, j int) bool {
		return batches[i].CommittedAt.After(batches[j].CommittedAt)
	})
	return batches, nil
}
