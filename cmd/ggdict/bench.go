package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/graph-guard/ggdict/pkg/cli"
	"github.com/graph-guard/ggdict/pkg/config"
	"github.com/graph-guard/ggdict/pkg/container"
	"github.com/graph-guard/ggdict/pkg/dictionary"
	"github.com/phuslu/log"
)

// bench inserts c.N distinct keys in random order
// and reads them back in a different random order.
func bench(w io.Writer, c cli.CommandBench) {
	conf := ReadConfig(w, c.ConfigPath)
	if conf == nil {
		return
	}
	l := newLogger(w, conf)

	var err error
	switch c.Keys {
	case cli.KeysInt:
		keys := make([]int, c.N)
		for i := range keys {
			keys[i] = i
		}
		err = runBench(l, c, conf, keys)
	case cli.KeysString:
		keys := make([]string, c.N)
		for i := range keys {
			keys[i] = "key_" + strconv.Itoa(i)
		}
		err = runBench(l, c, conf, keys)
	case cli.KeysUUID:
		keys := make([]uuid.UUID, c.N)
		for i := range keys {
			keys[i] = uuid.NewSHA1(uuid.NameSpaceOID, []byte(strconv.Itoa(i)))
		}
		err = runBench(l, c, conf, keys)
	}
	if err != nil {
		l.Error().Err(err).Msg("bench failed")
	}
}

func runBench[K comparable](
	l log.Logger,
	c cli.CommandBench,
	conf *config.Config,
	keys []K,
) error {
	d, backend, err := newBenchDictionary[K](c.Backend, conf)
	if err != nil {
		return err
	}
	defer d.Reset()

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	shuffle := func() {
		r.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
	}

	shuffle()
	start := time.Now()
	for _, k := range keys {
		d.Set(k, k)
	}
	timeSet := time.Since(start)

	shuffle()
	start = time.Now()
	for _, k := range keys {
		v, err := d.Get(k)
		if err != nil {
			return err
		}
		if v != k {
			return fmt.Errorf("Get(%v) returned %v", k, v)
		}
	}
	timeGet := time.Since(start)

	n := int64(len(keys))
	l.Info().
		Str("backend", backend.String()).
		Str("keys", c.Keys).
		Str("count", humanize.Comma(n)).
		Int("len", d.Len()).
		Dur("set", timeSet).
		Dur("get", timeGet).
		Dur("setPerOp", timeSet/time.Duration(n)).
		Dur("getPerOp", timeGet/time.Duration(n)).
		Msg("bench completed")
	return nil
}

func newBenchDictionary[K comparable](
	backendName string,
	conf *config.Config,
) (container.Dictionary[K, K], dictionary.Backend, error) {
	opt := dictionary.WithConfig(conf.Hash)
	if backendName == cli.BackendAuto {
		d := dictionary.New[K, K](opt)
		return d, d.Backend(), nil
	}
	b, ok := dictionary.ParseBackend(backendName)
	if !ok {
		return nil, 0, fmt.Errorf("unknown backend: %q", backendName)
	}
	d, err := dictionary.NewBackend[K, K](b, opt)
	return d, b, err
}
