package engine

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Options is the engine options bag of SPEC_FULL §4.13, loadable from an
// optional TOML file and individually overridable at runtime via UCI's
// setoption.
type Options struct {
	Hash     int    `toml:"hash"`
	OwnBook  bool   `toml:"own_book"`
	BookFile string `toml:"book_file"`
	Threads  int    `toml:"threads"`
}

// DefaultOptions returns the defaults of §4.13.
func DefaultOptions() Options {
	return Options{
		Hash:     64,
		OwnBook:  true,
		BookFile: "",
		Threads:  1,
	}
}

// LoadOptions reads a TOML options file, starting from the defaults and
// overriding only the fields present in the file. An empty path or a file
// that does not exist returns the defaults unchanged.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if path == "" {
		return opts, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return opts, nil
	}
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// SetOption applies a single UCI setoption name/value pair (§4.13). Unknown
// names are ignored; the caller is expected to log that.
func (o *Options) SetOption(name, value string) bool {
	switch name {
	case "Hash":
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		o.Hash = n
	case "OwnBook":
		o.OwnBook = value == "true"
	case "BookFile":
		o.BookFile = value
	case "Threads":
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		o.Threads = n
	default:
		return false
	}
	return true
}
