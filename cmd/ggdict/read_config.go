package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/graph-guard/ggdict/pkg/config"
	"github.com/phuslu/log"
)

// ReadConfig returns the defaults if configPath is empty.
// If configPath is a directory, either config.yaml or config.yml
// is read from it.
// Returns nil if the config couldn't be read.
func ReadConfig(w io.Writer, configPath string) *config.Config {
	if configPath == "" {
		return config.Default()
	}
	var conf *config.Config
	var err error
	if i, errStat := os.Stat(configPath); errStat == nil && i.IsDir() {
		conf, err = config.ReadDir(os.DirFS(configPath), ".")
	} else {
		basePath, fileName := basePathAndFileName(configPath)
		conf, err = config.Read(os.DirFS(basePath), fileName)
	}
	if err != nil {
		fmt.Fprintf(w, "reading config: %s\n", err)
		return nil
	}
	return conf
}

func basePathAndFileName(path string) (basePath, fileName string) {
	return filepath.Dir(path), filepath.Base(path)
}

func newLogger(w io.Writer, conf *config.Config) log.Logger {
	return log.Logger{
		Level:      log.ParseLevel(conf.Log.Level),
		TimeField:  "time",
		TimeFormat: "15:04:05",
		Writer:     &log.IOWriter{Writer: w},
	}
}
