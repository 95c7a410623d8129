package config_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/graph-guard/ggdict/pkg/config"
	"github.com/stretchr/testify/require"
)

type TestOK struct {
	Filesystem fstest.MapFS
	Expect     *config.Config
}

type TestError struct {
	Filesystem fstest.MapFS
	Check      func(*testing.T, error)
}

func TestRead(t *testing.T) {
	for _, td := range []TestOK{
		{
			Filesystem: fstest.MapFS{
				"config.yaml": file(
					"log:",
					"  level: debug",
					"hash:",
					"  buckets: 7",
					"  load-factor-divisor: 2",
					"  growth-multiplier: 5",
					"  hasher: xxh64",
					"  seed: 42",
				),
			},
			Expect: &config.Config{
				Log: config.Log{Level: config.LogLevelDebug},
				Hash: config.Hash{
					Buckets:           7,
					LoadFactorDivisor: 2,
					GrowthMultiplier:  5,
					Hasher:            config.HasherXXH64,
					Seed:              42,
				},
			},
		},
		{
			// Partial config keeps defaults
			Filesystem: fstest.MapFS{
				"config.yaml": file(
					"hash:",
					"  seed: 1",
				),
			},
			Expect: func() *config.Config {
				c := config.Default()
				c.Hash.Seed = 1
				return c
			}(),
		},
		{
			// Empty config
			Filesystem: fstest.MapFS{
				"config.yaml": file(),
			},
			Expect: config.Default(),
		},
	} {
		t.Run("", func(t *testing.T) {
			c, err := config.Read(td.Filesystem, "config.yaml")
			require.NoError(t, err)
			require.Equal(t, td.Expect, c)
		})
	}
}

func TestReadErr(t *testing.T) {
	for _, td := range []TestError{
		{
			Filesystem: fstest.MapFS{},
			Check: func(t *testing.T, err error) {
				require.Equal(t, &config.ErrorMissing{
					FilePath: "config.yaml",
				}, err)
				require.Equal(t, "missing config.yaml", err.Error())
			},
		},
		{
			Filesystem: fstest.MapFS{
				"config.yaml": file(
					"hash:",
					"  unknown: 1",
				),
			},
			Check: func(t *testing.T, err error) {
				var e *config.ErrorIllegal
				require.ErrorAs(t, err, &e)
				require.Equal(t, "config.yaml", e.FilePath)
				require.Contains(t, e.Message, "unknown")
			},
		},
		{
			Filesystem: fstest.MapFS{
				"config.yaml": file(
					"hash:",
					"  hasher: md5",
				),
			},
			Check: func(t *testing.T, err error) {
				require.Equal(t, &config.ErrorIllegal{
					FilePath: "config.yaml",
					Feature:  "hash.hasher",
					Message:  `unsupported hasher "md5"`,
				}, err)
				require.Equal(t,
					`illegal hash.hasher in config.yaml: unsupported hasher "md5"`,
					err.Error(),
				)
			},
		},
		{
			Filesystem: fstest.MapFS{
				"config.yaml": file(
					"log:",
					"  level: verbose",
				),
			},
			Check: func(t *testing.T, err error) {
				require.Equal(t, &config.ErrorIllegal{
					FilePath: "config.yaml",
					Feature:  "log.level",
					Message:  `unsupported level "verbose"`,
				}, err)
			},
		},
		{
			Filesystem: fstest.MapFS{
				"config.yaml": file(
					"hash:",
					"  growth-multiplier: 1",
				),
			},
			Check: func(t *testing.T, err error) {
				require.Equal(t, &config.ErrorIllegal{
					FilePath: "config.yaml",
					Feature:  "hash.growth-multiplier",
					Message:  "must be at least 2",
				}, err)
			},
		},
		{
			Filesystem: fstest.MapFS{
				"config.yaml": file(
					"hash:",
					"  buckets: 0",
				),
			},
			Check: func(t *testing.T, err error) {
				require.Equal(t, &config.ErrorIllegal{
					FilePath: "config.yaml",
					Feature:  "hash.buckets",
					Message:  "must be at least 1",
				}, err)
			},
		},
	} {
		t.Run("", func(t *testing.T) {
			c, err := config.Read(td.Filesystem, "config.yaml")
			require.Nil(t, c)
			td.Check(t, err)
		})
	}
}

func TestReadDir(t *testing.T) {
	t.Run("yml", func(t *testing.T) {
		c, err := config.ReadDir(fstest.MapFS{
			"conf/config.yml": file("hash:", "  seed: 3"),
		}, "conf")
		require.NoError(t, err)
		require.Equal(t, uint64(3), c.Hash.Seed)
	})

	t.Run("conflict", func(t *testing.T) {
		c, err := config.ReadDir(fstest.MapFS{
			"conf/config.yml":  file(),
			"conf/config.yaml": file(),
		}, "conf")
		require.Nil(t, c)
		require.Equal(t, &config.ErrorConflict{Items: []string{
			config.FileConfig1, config.FileConfig2,
		}}, err)
		require.Equal(t,
			"conflict between: config.yaml, config.yml",
			err.Error(),
		)
	})

	t.Run("missing", func(t *testing.T) {
		c, err := config.ReadDir(fstest.MapFS{
			"conf/other.yaml": file(),
		}, "conf")
		require.Nil(t, c)
		require.Equal(t, &config.ErrorMissing{
			FilePath: "conf/config.yaml",
		}, err)
	})
}

func file(lines ...string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(strings.Join(lines, "\n"))}
}
