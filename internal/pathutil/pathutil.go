// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "REHEARSE_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	statusFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	statusFilePath string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = newPaths(os.Getenv(envName))
		initErr = paths.computePaths()
	})

	return initErr
}

func newPaths(env string) *Paths {
	p := &Paths{
		configDir:      "rehearse",
		configFileName: "config.yml",
		statusFileName: "status.json",
		logFileName:    "rehearse.log",
	}

	env = strings.TrimSpace(env)
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
		p.logFileName = fmt.Sprintf("rehearse_%s.log", env)
	}

	return p
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.configDir, p.configFileName),
	)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return fmt.Errorf("resolving data dir: %w", err)
	}

	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
