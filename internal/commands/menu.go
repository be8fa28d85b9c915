package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/clipstash/internal/clipstash"
	"github.com/hay-kot/clipstash/internal/core/clip"
	"github.com/hay-kot/clipstash/internal/core/config"
	"github.com/hay-kot/clipstash/internal/exchange"
	"github.com/hay-kot/clipstash/internal/printer"
	"github.com/hay-kot/clipstash/internal/prompt"
)

// Menu actions in display order.
const (
	ActionSave   = "Save"
	ActionLoad   = "Load"
	ActionList   = "List"
	ActionSearch = "Search"
	ActionDelete = "Delete"
	ActionExport = "Export"
	ActionImport = "Import"
	ActionQuit   = "Quit"
)

var menuActions = []string{
	ActionSave, ActionLoad, ActionList, ActionSearch,
	ActionDelete, ActionExport, ActionImport, ActionQuit,
}

const cancelOption = "Cancel"

// Menu is the interactive loop. Each iteration asks for an action, runs it,
// and reports the outcome; errors never end the loop. Quit, or cancelling the
// action prompt, saves the store and returns.
type Menu struct {
	svc   *clipstash.Service
	shell prompt.Shell
	cfg   *config.Config
	p     *printer.Printer
	out   io.Writer
}

// NewMenu creates a Menu. Tables are written to out, messages to p.
func NewMenu(svc *clipstash.Service, shell prompt.Shell, cfg *config.Config, p *printer.Printer, out io.Writer) *Menu {
	return &Menu{svc: svc, shell: shell, cfg: cfg, p: p, out: out}
}

// Run loops until the user quits. The returned error is only non-nil when the
// final save fails.
func (m *Menu) Run(ctx context.Context) error {
	for {
		idx, err := m.shell.Choice(ctx, "Select an action:", menuActions)
		if err != nil {
			if !errors.Is(err, clip.ErrUserCancelled) {
				m.p.Error(err)
			}
			return m.quit(ctx)
		}

		action := menuActions[idx]
		if action == ActionQuit {
			return m.quit(ctx)
		}

		m.report(m.dispatch(ctx, action))
	}
}

func (m *Menu) dispatch(ctx context.Context, action string) error {
	switch action {
	case ActionSave:
		return m.save(ctx)
	case ActionLoad:
		return m.load(ctx)
	case ActionList:
		return m.list()
	case ActionSearch:
		return m.search(ctx)
	case ActionDelete:
		return m.delete(ctx)
	case ActionExport:
		return m.export(ctx)
	case ActionImport:
		return m.importFile(ctx)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

func (m *Menu) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, clip.ErrUserCancelled):
		m.p.Infof("Cancelled")
	case clipstash.IsPersistError(err):
		m.p.Error(err)
		m.p.Warnf("The change is kept in memory; Quit saves again")
	default:
		m.p.Error(err)
	}
}

func (m *Menu) quit(ctx context.Context) error {
	if err := m.svc.Persist(ctx); err != nil {
		return fmt.Errorf("save before quitting: %w", err)
	}
	m.p.Successf("Data saved to %s", m.svc.DataPath())
	return nil
}

func (m *Menu) save(ctx context.Context) error {
	history, err := m.shell.Text(ctx, "Enter clipboard history name:", prompt.TextOptions{
		Value:    m.svc.Store().Current(),
		Required: true,
	})
	if err != nil {
		return err
	}

	key, err := m.shell.Text(ctx, "Enter key:", prompt.TextOptions{Required: true})
	if err != nil {
		return err
	}

	value, err := m.svc.Capture(ctx, history, key)
	if err != nil {
		return err
	}

	m.p.Successf("Saved %q to clipboard history %q", key, history)
	m.p.Infof("%s", printer.Preview(value, m.cfg.ValuePreview))
	return nil
}

func (m *Menu) load(ctx context.Context) error {
	history, key, err := m.pickEntry(ctx, "Select a clipboard history to load:", "Select a key to load:")
	if err != nil {
		return err
	}

	if _, err := m.svc.Recall(ctx, history, key); err != nil {
		return err
	}

	m.p.Successf("Copied %q from %q to clipboard", key, history)
	return nil
}

func (m *Menu) list() error {
	store := m.svc.Store()
	if store.Empty() {
		m.p.Infof("No clipboard history")
		return nil
	}

	fmt.Fprintln(m.out, printer.EntryTable(store.Records(), emptyHistories(store), m.cfg.ValuePreview))
	return nil
}

func (m *Menu) search(ctx context.Context) error {
	term, err := m.shell.Text(ctx, "Enter a search term:", prompt.TextOptions{})
	if err != nil {
		return err
	}

	results, err := m.svc.Search(ctx, term)
	if err != nil {
		return err
	}

	if results.Len() == 0 {
		if m.svc.Store().Empty() {
			m.p.Infof("Clipboard history is empty")
		} else {
			m.p.Infof("No results found for search term: %s", term)
		}
		return nil
	}

	fmt.Fprintln(m.out, printer.EntryTable(results.Records(), nil, m.cfg.ValuePreview))
	return nil
}

func (m *Menu) delete(ctx context.Context) error {
	history, key, err := m.pickEntry(ctx, "Select a clipboard history to delete from:", "Select a key to delete:")
	if err != nil {
		return err
	}

	if m.cfg.ConfirmDelete {
		ok, err := m.shell.Confirm(ctx, fmt.Sprintf("Delete %q from %q?", key, history))
		if err != nil {
			return err
		}
		if !ok {
			return clip.ErrUserCancelled
		}
	}

	if err := m.svc.Delete(ctx, history, key); err != nil {
		return err
	}

	m.p.Successf("Key %q deleted from clipboard history %q", key, history)
	return nil
}

func (m *Menu) export(ctx context.Context) error {
	format, err := m.pickFormat(ctx, "Export data as:")
	if err != nil {
		return err
	}

	path, err := m.shell.Text(ctx, fmt.Sprintf("Enter the filename for %s export:", format.Label()), prompt.TextOptions{
		Value:    "clipboard-export." + format.String(),
		Required: true,
	})
	if err != nil {
		return err
	}

	if err := m.svc.Export(ctx, path, format); err != nil {
		return err
	}

	m.p.Successf("Clipboard data exported to %s", path)
	return nil
}

func (m *Menu) importFile(ctx context.Context) error {
	format, err := m.pickFormat(ctx, "Import data from:")
	if err != nil {
		return err
	}

	path, err := m.shell.Text(ctx, fmt.Sprintf("Enter the filename for %s import:", format.Label()), prompt.TextOptions{
		Required: true,
	})
	if err != nil {
		return err
	}

	stats, err := m.svc.Import(ctx, path, format)
	if err != nil {
		return err
	}

	m.p.Successf("Data imported from %s", path)
	m.p.Infof("%s", describeMerge(stats))
	return nil
}

// pickEntry asks for a history, then for a key within it.
func (m *Menu) pickEntry(ctx context.Context, historyLabel, keyLabel string) (string, string, error) {
	store := m.svc.Store()
	names := store.HistoryNames()
	if len(names) == 0 {
		return "", "", fmt.Errorf("no clipboard histories saved yet: %w", clip.ErrNotFound)
	}

	idx, err := m.shell.Choice(ctx, historyLabel, names)
	if err != nil {
		return "", "", err
	}
	history := names[idx]
	store.SetCurrent(history)

	h, err := store.History(history)
	if err != nil {
		return "", "", err
	}

	keys := h.Keys()
	if len(keys) == 0 {
		return "", "", fmt.Errorf("history %q has no entries: %w", history, clip.ErrNotFound)
	}

	idx, err = m.shell.Choice(ctx, keyLabel, keys)
	if err != nil {
		return "", "", err
	}
	return history, keys[idx], nil
}

func (m *Menu) pickFormat(ctx context.Context, label string) (exchange.Format, error) {
	options := make([]string, 0, len(exchange.Formats)+1)
	for _, f := range exchange.Formats {
		options = append(options, f.Label())
	}
	options = append(options, cancelOption)

	idx, err := m.shell.Choice(ctx, label, options)
	if err != nil {
		return "", err
	}
	if options[idx] == cancelOption {
		return "", clip.ErrUserCancelled
	}
	return exchange.Formats[idx], nil
}

func emptyHistories(s *clip.Store) []string {
	var names []string
	for name := range s.Histories() {
		if h, err := s.History(name); err == nil && h.Len() == 0 {
			names = append(names, name)
		}
	}
	return names
}

func describeMerge(stats clip.MergeStats) string {
	return fmt.Sprintf("%d entries: %d added, %d updated, %d unchanged, %d new histories",
		stats.Total(), stats.Added, stats.Updated, stats.Unchanged, stats.HistoriesCreated)
}
