package commands

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/hay-kot/clipstash/internal/clipboard"
	"github.com/hay-kot/clipstash/internal/clipstash"
	"github.com/hay-kot/clipstash/internal/core/config"
	"github.com/hay-kot/clipstash/internal/prompt"
	"github.com/hay-kot/clipstash/internal/store/jsonfile"
)

type Flags struct {
	LogLevel    string
	LogFile     string
	ConfigPath  string
	DataDir     string
	DataFile    string
	NoClipboard bool

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Clipboard and Shell are set in the Before hook; tests swap in fakes.
	Clipboard clipboard.Gateway
	Shell     prompt.Shell

	service *clipstash.Service
}

// Service opens the clipboard store on first use. Commands that only inspect
// configuration, like doctor, never touch the data file.
func (f *Flags) Service() (*clipstash.Service, error) {
	if f.service != nil {
		return f.service, nil
	}

	svc, err := clipstash.Open(
		jsonfile.New(f.Config.DataPath()),
		f.Clipboard,
		log.With().Str("component", "clipstash").Logger(),
		f.Config.DefaultHistory,
	)
	if err != nil {
		return nil, err
	}

	f.service = svc
	return svc, nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "clipstash", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "clipstash")
}
