package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/graph-guard/ggdict/pkg/cli"
	"github.com/graph-guard/ggdict/pkg/container"
	"github.com/graph-guard/ggdict/pkg/dictionary"
	"github.com/tidwall/gjson"
	yaml "gopkg.in/yaml.v3"
)

// load reads a file of string key-value pairs into a dictionary
// and prints the value of every key in c.Keys.
func load(w io.Writer, c cli.CommandLoad) {
	conf := ReadConfig(w, c.ConfigPath)
	if conf == nil {
		return
	}
	l := newLogger(w, conf)

	data, err := os.ReadFile(c.FilePath)
	if err != nil {
		l.Error().Err(err).Str("file", c.FilePath).Msg("reading input")
		return
	}

	d := dictionary.New[string, string](dictionary.WithConfig(conf.Hash))
	if err := loadPairs(d, c.FilePath, data); err != nil {
		l.Error().Err(err).Str("file", c.FilePath).Msg("parsing input")
		return
	}
	l.Debug().
		Str("file", c.FilePath).
		Str("backend", d.Backend().String()).
		Int("entries", d.Len()).
		Msg("loaded")

	lookup(w, d, c.Keys)
}

func lookup(w io.Writer, d container.Dictionary[string, string], keys []string) {
	for _, k := range keys {
		v, err := d.Get(k)
		if errors.Is(err, container.ErrNotFound) {
			fmt.Fprintf(w, "%s: not found\n", k)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", k, v)
	}
}

// loadPairs picks the decoder by file extension.
func loadPairs(
	d container.Dictionary[string, string],
	filePath string,
	data []byte,
) error {
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".json":
		return loadJSON(d, data)
	case ".yaml", ".yml":
		return loadYAML(d, data)
	default:
		return fmt.Errorf("unsupported file extension: %q", ext)
	}
}

func loadJSON(d container.Dictionary[string, string], data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("invalid JSON")
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return errors.New("expected JSON object")
	}
	r.ForEach(func(key, value gjson.Result) bool {
		d.Set(key.String(), value.String())
		return true
	})
	return nil
}

func loadYAML(d container.Dictionary[string, string], data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding YAML: %w", err)
	}
	if len(doc.Content) < 1 {
		// Empty document
		return nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return errors.New("expected YAML mapping")
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: expected scalar key and value", k.Line)
		}
		d.Set(k.Value, v.Value)
	}
	return nil
}
