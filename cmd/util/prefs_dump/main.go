// prefs_dump prints the recipe display settings resolved from a settings file, optionally
// changing flags first.
//
//	prefs_dump [-file path] [-set key=bool ...]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cooklang/cookprefs/config"
	"github.com/cooklang/cookprefs/pkg/recipe"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setFlags collects repeated -set values.
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func run(args []string, out io.Writer) error {
	fset := flag.NewFlagSet("prefs_dump", flag.ContinueOnError)
	fset.SetOutput(out)
	file := fset.String("file", "", "settings file (default ~/.cookprefs/settings.json)")
	var sets setFlags
	fset.Var(&sets, "set", "key=bool to change before printing, may be repeated")
	if err := fset.Parse(args); err != nil {
		return err
	}

	path := *file
	if path == "" {
		var err error
		if path, err = config.GetSettingsFilename(); err != nil {
			return err
		}
	}

	store := recipe.NewStore(recipe.NewFileStorage(path))
	store.Load()

	for _, kv := range sets {
		f, value, err := parseSet(kv)
		if err != nil {
			return err
		}
		if err := store.Mutate(func(s *recipe.Settings) { f.Set(s, value) }); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(store.Settings(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func parseSet(kv string) (recipe.Flag, bool, error) {
	key, raw, ok := strings.Cut(kv, "=")
	if !ok {
		return recipe.Flag{}, false, fmt.Errorf("invalid -set %q: want key=bool", kv)
	}
	f, ok := recipe.FlagByKey(strings.TrimSpace(key))
	if !ok {
		return recipe.Flag{}, false, fmt.Errorf("unknown setting %q", key)
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return recipe.Flag{}, false, fmt.Errorf("invalid value for %s: %w", f.Key, err)
	}
	return f, value, nil
}
