package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const EnvConfig = "GGDICT_CONFIG"

const (
	KeysInt    = "int"
	KeysString = "string"
	KeysUUID   = "uuid"
)

const BackendAuto = "auto"

// Command can be any of:
//
//	CommandBench
//	CommandLoad
//	CommandSelect
type Command any

type CommandBench struct {
	ConfigPath string
	N          int
	Keys       string
	Backend    string
}

type CommandLoad struct {
	ConfigPath string
	FilePath   string
	Keys       []string
}

type CommandSelect struct{}

func Parse(w io.Writer, args []string) (cmd Command) {
	fm := fmt.Sprintf

	executableName := "ggdict"
	if len(args) > 0 {
		executableName = filepath.Base(args[0])
	}

	flags := flag.NewFlagSet("ggdict", flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		writeLines(w,
			fm("usage: %s <command> [flags]", executableName),
			"",
			"commands available:",
			" bench - measures Set and Get over shuffled keys",
			" load - loads key-value pairs from a file and looks up keys",
			" select - prints the backend selected for sample key types",
		)
	}

	parseFlags := func() (ok bool) {
		err := flags.Parse(args[2:])
		// flags will automatically call .Usage()
		return err == nil
	}

	if len(args) < 2 {
		flags.Usage()
		return nil
	}

	configUsage := fm("-config <path>: defines the configuration file or directory path "+
		"(default: $%s or built-in defaults)", EnvConfig)

	switch args[1] {
	case "bench":
		c := CommandBench{}
		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s bench [-n <count>] [-keys <type>] "+
					"[-backend <name>] [-config <path>]", executableName),
				"",
				"flags:",
				"-n <count>: number of distinct keys (default: 500000)",
				"-keys <type>: int, string or uuid (default: int)",
				"-backend <name>: auto, list, tree or hash (default: auto)",
				configUsage,
			)
		}
		flags.IntVar(&c.N, "n", 500000, "")
		flags.StringVar(&c.Keys, "keys", KeysInt, "")
		flags.StringVar(&c.Backend, "backend", BackendAuto, "")
		flags.StringVar(&c.ConfigPath, "config", os.Getenv(EnvConfig), "")
		if !parseFlags() {
			return nil
		}

		if c.N < 1 {
			writeLines(w, "-n must be greater than 0")
			flags.Usage()
			return nil
		}
		switch c.Keys {
		case KeysInt, KeysString, KeysUUID:
		default:
			writeLines(w, fm("unsupported key type: %q", c.Keys))
			flags.Usage()
			return nil
		}
		switch c.Backend {
		case BackendAuto, "list", "tree", "hash":
		default:
			writeLines(w, fm("unsupported backend: %q", c.Backend))
			flags.Usage()
			return nil
		}
		cmd = c

	case "load":
		c := CommandLoad{}
		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s load -file <path> [-config <path>] [key...]",
					executableName),
				"",
				"flags:",
				"-file <path>: YAML or JSON object of string keys and values",
				configUsage,
			)
		}
		flags.StringVar(&c.FilePath, "file", "", "")
		flags.StringVar(&c.ConfigPath, "config", os.Getenv(EnvConfig), "")
		if !parseFlags() {
			return nil
		}
		if c.FilePath == "" {
			writeLines(w, "-file isn't set.")
			flags.Usage()
			return nil
		}
		c.Keys = flags.Args()
		cmd = c

	case "select":
		if !parseFlags() {
			return nil
		}
		cmd = CommandSelect{}

	case "help":
		PrintHelp(w)
		return

	default:
		flags.Usage()
		return nil
	}
	return cmd
}

func writeLines(w io.Writer, lines ...string) {
	for i := range lines {
		_, _ = w.Write([]byte(lines[i]))
		_, _ = w.Write([]byte("\n"))
	}
}

func PrintHelp(w io.Writer) {
	writeLines(w, strings.Join([]string{
		"ggdict - generic dictionary with list, AVL tree and hash table backends",
		"",
		"The backend is selected once per key type:",
		" hashable keys use the hash table,",
		" otherwise ordered keys use the AVL tree,",
		" otherwise keys are stored in a linked list.",
	}, "\n"))
}
