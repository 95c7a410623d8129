package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/graph-guard/ggdict/pkg/container/hamap"
	yaml "gopkg.in/yaml.v3"
)

const FileConfig1 = "config.yaml"
const FileConfig2 = "config.yml"

const HasherXXH3 = "xxh3"
const HasherXXH64 = "xxh64"

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

type Config struct {
	Log  Log  `yaml:"log"`
	Hash Hash `yaml:"hash"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Hash tunes the hash table backend.
type Hash struct {
	Buckets           int    `yaml:"buckets"`
	LoadFactorDivisor int    `yaml:"load-factor-divisor"`
	GrowthMultiplier  int    `yaml:"growth-multiplier"`
	Hasher            string `yaml:"hasher"`
	Seed              uint64 `yaml:"seed"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Log: Log{Level: LogLevelInfo},
		Hash: Hash{
			Buckets:           hamap.DefaultBuckets,
			LoadFactorDivisor: hamap.DefaultLoadFactorDivisor,
			GrowthMultiplier:  hamap.DefaultGrowthMultiplier,
			Hasher:            HasherXXH3,
		},
	}
}

// Read reads the config file at path.
// Fields missing in the file keep their default values.
func Read(filesystem fs.FS, path string) (*Config, error) {
	f, err := filesystem.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &ErrorMissing{FilePath: path}
	} else if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	c := Default()
	d := yaml.NewDecoder(f)
	d.KnownFields(true)
	if err := d.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ErrorIllegal{
			FilePath: path,
			Message:  err.Error(),
		}
	}
	if err := c.validate(path); err != nil {
		return nil, err
	}
	return c, nil
}

// ReadDir reads either config.yaml or config.yml from dirPath.
func ReadDir(filesystem fs.FS, dirPath string) (*Config, error) {
	d, err := fs.ReadDir(filesystem, dirPath)
	if err != nil {
		return nil, fmt.Errorf("reading config directory: %w", err)
	}
	var name string
	for _, o := range d {
		if o.IsDir() {
			continue
		}
		if n := o.Name(); n == FileConfig1 || n == FileConfig2 {
			if name != "" {
				return nil, &ErrorConflict{Items: []string{
					FileConfig1,
					FileConfig2,
				}}
			}
			name = n
		}
	}
	if name == "" {
		return nil, &ErrorMissing{FilePath: join(dirPath, FileConfig1)}
	}
	return Read(filesystem, join(dirPath, name))
}

func join(dir, name string) string {
	if dir == "" || dir == "." {
		return name
	}
	return strings.TrimSuffix(dir, "/") + "/" + name
}

func (c *Config) validate(path string) error {
	switch c.Log.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return &ErrorIllegal{
			FilePath: path,
			Feature:  "log.level",
			Message:  "unsupported level " + strconv.Quote(c.Log.Level),
		}
	}
	switch c.Hash.Hasher {
	case HasherXXH3, HasherXXH64:
	default:
		return &ErrorIllegal{
			FilePath: path,
			Feature:  "hash.hasher",
			Message:  "unsupported hasher " + strconv.Quote(c.Hash.Hasher),
		}
	}
	for _, f := range []struct {
		Feature string
		Value   int
		Min     int
	}{
		{"hash.buckets", c.Hash.Buckets, 1},
		{"hash.load-factor-divisor", c.Hash.LoadFactorDivisor, 1},
		{"hash.growth-multiplier", c.Hash.GrowthMultiplier, 2},
	} {
		if f.Value < f.Min {
			return &ErrorIllegal{
				FilePath: path,
				Feature:  f.Feature,
				Message:  "must be at least " + strconv.Itoa(f.Min),
			}
		}
	}
	return nil
}

type ErrorConflict struct {
	Items []string
}

func (e ErrorConflict) Error() string {
	var b strings.Builder
	b.WriteString("conflict between: ")
	for i := range e.Items {
		b.WriteString(e.Items[i])
		if i+1 < len(e.Items) {
			b.WriteString(", ")
		}
	}
	return b.String()
}

type ErrorMissing struct {
	FilePath string
	Feature  string
}

func (e ErrorMissing) Error() string {
	var b strings.Builder
	if e.Feature == "" {
		b.Grow(len("missing ") + len(e.FilePath))
		b.WriteString("missing ")
		b.WriteString(e.FilePath)
		return b.String()
	}
	b.Grow(len("missing ") + len(e.Feature) + len(" in ") + len(e.FilePath))
	b.WriteString("missing ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	return b.String()
}

type ErrorIllegal struct {
	FilePath string
	Feature  string
	Message  string
}

func (e ErrorIllegal) Error() string {
	var b strings.Builder
	b.WriteString("illegal ")
	if e.Feature != "" {
		b.WriteString(e.Feature)
		b.WriteString(" in ")
	}
	b.WriteString(e.FilePath)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}
