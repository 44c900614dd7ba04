package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"talentdesk/internal/errors"
	"talentdesk/internal/models"

	"go.uber.org/zap"
)

// Store owns the on-disk JSON aggregate holding all jobs and candidates. Every
// operation reads or rewrites the whole document. A single mutex serializes
// load-mutate-save cycles so concurrent writers cannot lose each other's
// updates.
type Store struct {
	path   string
	logger *zap.Logger
	mutex  sync.Mutex
}

func New(path string, logger *zap.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Load reads the backing file. A missing file is the first-run bootstrap case
// and yields an empty document; any other read failure is fatal for the
// request.
func (s *Store) Load() (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("store file missing, bootstrapping empty document",
				zap.String("path", s.path))
			return &models.Document{
				Jobs:       []models.JobPosting{},
				Candidates: []models.Candidate{},
			}, nil
		}
		return nil, errors.Internal("reading store file", err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Internal("decoding store file", err)
	}
	if doc.Jobs == nil {
		doc.Jobs = []models.JobPosting{}
	}
	if doc.Candidates == nil {
		doc.Candidates = []models.Candidate{}
	}
	return &doc, nil
}

// Save replaces the backing file with the serialized document. The write goes
// through a temp file and rename so a crash mid-write never leaves a torn
// document behind.
func (s *Store) Save(doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Internal("encoding store document", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Internal("creating store directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return errors.Internal("creating temp store file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Internal("writing store file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Internal("closing store file", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Internal("replacing store file", err)
	}
	return nil
}

// Update runs fn inside the store's mutual-exclusion region: load, mutate,
// save. Returning an error from fn aborts the cycle without touching disk.
func (s *Store) Update(fn func(doc *models.Document) error) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	doc, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	if err := s.Save(doc); err != nil {
		return err
	}
	return nil
}

// View runs fn against a freshly loaded document under the store lock, without
// writing anything back.
func (s *Store) View(fn func(doc *models.Document) error) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	doc, err := s.Load()
	if err != nil {
		return err
	}
	return fn(doc)
}
