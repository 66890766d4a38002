package myplconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/mypl/configs"
	"github.com/reusee/mypl/logs"
	"github.com/reusee/mypl/modes"
)

//go:embed schema.cue
var schema string

var configFilenames = []string{
	"mypl.cue",
	".mypl.cue",
}

// ConfigDirs are searched for config files and init scripts, most specific
// first.
type ConfigDirs []string

func (Module) ConfigDirs(
	mode modes.Mode,
) (dirs ConfigDirs) {

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if mode != modes.ModeProduction {
		return
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}

	// system wide dir
	dirs = append(dirs, "/etc")

	return
}

func existingFiles(dirs ConfigDirs, filenames []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	dirs ConfigDirs,
) configs.Loader {
	paths := existingFiles(dirs, configFilenames)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}

// first reads a config value for a provider. Providers cannot return errors,
// so a file that fails to load or decode panics.
func first[T any](loader configs.Loader, path string) (T, bool) {
	value, ok, err := configs.First[T](loader, path)
	if err != nil {
		panic(err)
	}
	return value, ok
}
