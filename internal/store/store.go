// Package store persists taskwheel's task and project collections and the
// pending proposal queue as JSON files under the data directory, and keeps
// an append-only SQLite ledger of completed occurrences.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"

	"taskwheel/internal/task"
)

const (
	dirPerms  = 0o750
	filePerms = 0o600

	tasksFileName     = "tasks.json"
	projectsFileName  = "projects.json"
	proposalsFileName = "proposals.json"
	ledgerFileName    = "history.db"
)

// Proposal is a tentative next occurrence of a completed recurring task,
// awaiting confirmation. SourceID is the completed task that generated it.
type Proposal struct {
	SourceID uuid.UUID `json:"source_id"`
	Task     task.Item `json:"task"`
}

// Store reads and writes the JSON collections. All writes are atomic
// (write-to-temp plus rename) so a crash never leaves a torn file.
type Store struct {
	dataDir string
}

// Open ensures the data directory exists and returns a store rooted there.
func Open(dataDir string) (*Store, error) {
	err := os.MkdirAll(dataDir, dirPerms)
	if err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return &Store{dataDir: dataDir}, nil
}

// DataDir returns the directory the store writes into.
func (s *Store) DataDir() string {
	return s.dataDir
}

// LedgerPath returns the path of the completions ledger database.
func (s *Store) LedgerPath() string {
	return filepath.Join(s.dataDir, ledgerFileName)
}

// SaveTasks writes the full task collection.
func (s *Store) SaveTasks(tasks []task.Item) error {
	return s.writeJSON(tasksFileName, tasks)
}

// LoadTasks reads the task collection. A missing file is an empty
// collection, not an error.
func (s *Store) LoadTasks() ([]task.Item, error) {
	var tasks []task.Item

	err := s.readJSON(tasksFileName, &tasks)
	if err != nil {
		return nil, err
	}

	if tasks == nil {
		tasks = []task.Item{}
	}

	return tasks, nil
}

// SaveProjects writes the full project collection.
func (s *Store) SaveProjects(projects []task.Project) error {
	return s.writeJSON(projectsFileName, projects)
}

// LoadProjects reads the project collection. A missing file is an empty
// collection, not an error.
func (s *Store) LoadProjects() ([]task.Project, error) {
	var projects []task.Project

	err := s.readJSON(projectsFileName, &projects)
	if err != nil {
		return nil, err
	}

	if projects == nil {
		projects = []task.Project{}
	}

	return projects, nil
}

// SaveProposals writes the pending proposal queue.
func (s *Store) SaveProposals(proposals []Proposal) error {
	return s.writeJSON(proposalsFileName, proposals)
}

// LoadProposals reads the pending proposal queue. A missing file is an
// empty queue, not an error.
func (s *Store) LoadProposals() ([]Proposal, error) {
	var proposals []Proposal

	err := s.readJSON(proposalsFileName, &proposals)
	if err != nil {
		return nil, err
	}

	if proposals == nil {
		proposals = []Proposal{}
	}

	return proposals, nil
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	path := filepath.Join(s.dataDir, name)

	writeErr := atomic.WriteFile(path, bytes.NewReader(append(data, '\n')))
	if writeErr != nil {
		return fmt.Errorf("write %s: %w", name, writeErr)
	}

	// Set file permissions (atomic.WriteFile doesn't set them for new files)
	chmodErr := os.Chmod(path, filePerms)
	if chmodErr != nil {
		return fmt.Errorf("set permissions on %s: %w", name, chmodErr)
	}

	return nil
}

func (s *Store) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dataDir, name)) //nolint:gosec // path is config-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("read %s: %w", name, err)
	}

	unmarshalErr := json.Unmarshal(data, v)
	if unmarshalErr != nil {
		return fmt.Errorf("decode %s: %w", name, unmarshalErr)
	}

	return nil
}
