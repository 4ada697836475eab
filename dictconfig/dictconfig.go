// Package dictconfig loads dictionary-tuning parameters: a small
// struct with `cfg:"..."` tags, parsed out of a Redis-style
// `key value` file (lines starting with `#` are comments, booleans are
// `yes`/`no`), plus an environment-variable loader for the more common
// case of a dictionary embedded in another program rather than run
// standalone.
package dictconfig

import (
	"bufio"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/rucdlc/dictengine/dictlog"
	env "github.com/xyproto/env/v2"
)

// Config holds the tunables exposed by the dict package's
// process-wide knobs plus the initial-capacity hint used when seeding
// a fresh dictionary.
type Config struct {
	InitialCapacity  int  `cfg:"initial-capacity"`
	ForceResizeRatio int  `cfg:"force-resize-ratio"`
	ResizeEnabled    bool `cfg:"resize-enabled"`
}

// Default returns a Config matching the dict package's own built-in
// defaults.
func Default() *Config {
	return &Config{
		InitialCapacity:  4,
		ForceResizeRatio: 5,
		ResizeEnabled:    true,
	}
}

// parse scans `key value` lines with a bufio.Scanner, skipping
// `#`-comments, and assigns values onto Config's fields via their
// `cfg` tag through reflection.
func parse(src io.Reader) *Config {
	cfg := Default()

	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 0 && strings.TrimLeft(line, " ")[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			value := strings.Trim(line[pivot+1:], " ")
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		dictlog.Fatal("dictconfig: reading config: %v", err)
	}

	t := reflect.TypeOf(cfg)
	v := reflect.ValueOf(cfg)
	n := t.Elem().NumField()
	for i := 0; i < n; i++ {
		field := t.Elem().Field(i)
		fieldVal := v.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok || strings.TrimLeft(key, " ") == "" {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int:
			intValue, err := strconv.ParseInt(value, 10, 64)
			if err == nil {
				fieldVal.SetInt(intValue)
			}
		case reflect.Bool:
			fieldVal.SetBool(value == "yes")
		}
	}
	return cfg
}

// Load reads and parses a config file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f), nil
}

// LoadFromEnv builds a Config from environment variables named
// PREFIX_INITIAL_CAPACITY, PREFIX_FORCE_RESIZE_RATIO and
// PREFIX_RESIZE_ENABLED, falling back to Default() for any unset
// variable.
func LoadFromEnv(prefix string) *Config {
	cfg := Default()
	cfg.InitialCapacity = env.Int(prefix+"_INITIAL_CAPACITY", cfg.InitialCapacity)
	cfg.ForceResizeRatio = env.Int(prefix+"_FORCE_RESIZE_RATIO", cfg.ForceResizeRatio)
	if _, ok := os.LookupEnv(prefix + "_RESIZE_ENABLED"); ok {
		cfg.ResizeEnabled = env.Bool(prefix + "_RESIZE_ENABLED")
	}
	return cfg
}
