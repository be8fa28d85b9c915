// Package clipstash orchestrates clipboard history operations: every mutation of
// the in-memory store is followed by a full save of the data file.
package clipstash

import (
	"context"
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/hay-kot/clipstash/internal/clipboard"
	"github.com/hay-kot/clipstash/internal/core/clip"
	"github.com/hay-kot/clipstash/internal/core/validate"
	"github.com/hay-kot/clipstash/internal/exchange"
	"github.com/hay-kot/clipstash/internal/store/jsonfile"
)

// PersistError reports that a change was applied in memory but could not be
// written to disk. The store and the data file now differ until Persist
// succeeds; the change itself should not be repeated.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return "change applied but not saved: " + e.Err.Error()
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// Service owns the store and its data file.
type Service struct {
	store     *clip.Store
	file      *jsonfile.File
	clipboard clipboard.Gateway
	log       zerolog.Logger
}

// Open loads the data file if it exists, otherwise starts with an empty store.
// defaultHistory becomes the current history.
func Open(file *jsonfile.File, cb clipboard.Gateway, log zerolog.Logger, defaultHistory string) (*Service, error) {
	exists, err := file.Exists()
	if err != nil {
		return nil, err
	}

	store := clip.NewStore()
	if exists {
		store, err = file.Load()
		if err != nil {
			return nil, fmt.Errorf("load clipboard data: %w", err)
		}
		log.Debug().Str("path", file.Path()).Int("histories", len(store.HistoryNames())).Int("entries", store.Len()).Msg("loaded data file")
	} else {
		log.Debug().Str("path", file.Path()).Msg("data file not found, starting empty")
	}

	if defaultHistory != "" {
		store.SetCurrent(defaultHistory)
	}

	return &Service{
		store:     store,
		file:      file,
		clipboard: cb,
		log:       log,
	}, nil
}

// Store exposes the in-memory store for read-only display.
func (s *Service) Store() *clip.Store {
	return s.store
}

// DataPath returns the data file location.
func (s *Service) DataPath() string {
	return s.file.Path()
}

// Persist writes the store to disk. It is idempotent and is the recovery path
// after a PersistError.
func (s *Service) Persist(ctx context.Context) error {
	if err := s.file.Save(s.store); err != nil {
		s.log.Error().Err(err).Str("path", s.file.Path()).Msg("save failed")
		return err
	}
	s.log.Debug().Str("path", s.file.Path()).Int("entries", s.store.Len()).Msg("saved data file")
	return nil
}

// persistChange saves after a mutation, wrapping failure in PersistError.
func (s *Service) persistChange(ctx context.Context) error {
	if err := s.Persist(ctx); err != nil {
		return &PersistError{Err: err}
	}
	return nil
}

// Capture reads the clipboard and saves its contents under key in history.
func (s *Service) Capture(ctx context.Context, history, key string) (string, error) {
	if err := validateEntry(history, key); err != nil {
		return "", err
	}

	value, err := s.clipboard.Read(ctx)
	if err != nil {
		return "", err
	}

	return value, s.Put(ctx, history, key, value)
}

// Put saves value under key in history.
func (s *Service) Put(ctx context.Context, history, key, value string) error {
	if err := validateEntry(history, key); err != nil {
		return err
	}
	if err := validate.Value(value); err != nil {
		return err
	}

	s.store.SaveEntry(history, key, value)
	s.store.SetCurrent(history)
	s.log.Info().Str("history", history).Str("key", key).Int("bytes", len(value)).Msg("saved entry")

	return s.persistChange(ctx)
}

// Get returns the value stored under key in history.
func (s *Service) Get(ctx context.Context, history, key string) (string, error) {
	return s.store.GetEntry(history, key)
}

// Recall copies the stored value to the clipboard and returns it.
func (s *Service) Recall(ctx context.Context, history, key string) (string, error) {
	value, err := s.store.GetEntry(history, key)
	if err != nil {
		return "", err
	}

	if err := s.clipboard.Write(ctx, value); err != nil {
		return "", err
	}

	s.store.SetCurrent(history)
	s.log.Info().Str("history", history).Str("key", key).Msg("copied entry to clipboard")
	return value, nil
}

// Delete removes key from history.
func (s *Service) Delete(ctx context.Context, history, key string) error {
	if err := s.store.DeleteEntry(history, key); err != nil {
		return err
	}
	s.log.Info().Str("history", history).Str("key", key).Msg("deleted entry")

	return s.persistChange(ctx)
}

// Search returns entries matching term.
func (s *Service) Search(ctx context.Context, term string) (clip.Results, error) {
	if err := validate.SearchTerm(term); err != nil {
		return nil, err
	}
	return clip.Search(s.store, term)
}

// Histories returns history names matching a doublestar glob. An empty
// pattern matches every history.
func (s *Service) Histories(pattern string) ([]string, error) {
	names := s.store.HistoryNames()
	if pattern == "" {
		return names, nil
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("glob %q: %w", pattern, clip.ErrInvalidInput)
	}

	matched := make([]string, 0, len(names))
	for _, name := range names {
		if ok, _ := doublestar.Match(pattern, name); ok {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

// Export writes the whole store to path.
func (s *Service) Export(ctx context.Context, path string, format exchange.Format) error {
	if err := exchange.Export(s.store, path, format); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	s.log.Info().Str("path", path).Str("format", format.String()).Int("entries", s.store.Len()).Msg("exported")
	return nil
}

// Import merges the file at path into the store. Imported values replace
// existing ones.
func (s *Service) Import(ctx context.Context, path string, format exchange.Format) (clip.MergeStats, error) {
	ds, err := exchange.Import(path, format)
	if err != nil {
		return clip.MergeStats{}, fmt.Errorf("import: %w", err)
	}

	stats := clip.MergeDataset(s.store, ds)
	s.log.Info().
		Str("path", path).
		Str("format", format.String()).
		Int("added", stats.Added).
		Int("updated", stats.Updated).
		Int("unchanged", stats.Unchanged).
		Msg("imported")

	return stats, s.persistChange(ctx)
}

// IsPersistError reports whether err is a PersistError.
func IsPersistError(err error) bool {
	var pe *PersistError
	return errors.As(err, &pe)
}

func validateEntry(history, key string) error {
	if err := validate.HistoryName(history); err != nil {
		return err
	}
	return validate.Key(key)
}
