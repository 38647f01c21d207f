package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amedev/sheetscout/internal/search"
)

// enginesFile is the on-disk shape of engines.toml: an ordered array of
// [[engine]] tables, so file order is menu order.
type enginesFile struct {
	Engine []engineEntry `toml:"engine"`
}

type engineEntry struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// DefaultEngines returns the built-in registry used when engines.toml is
// absent or yields no valid entries.
func DefaultEngines() search.Registry {
	return search.Registry{
		{Name: "Google", URL: "https://www.google.com/search?q=" + search.Placeholder},
		{Name: "Bing", URL: "https://www.bing.com/search?q=" + search.Placeholder},
		{Name: "DuckDuckGo", URL: "https://duckduckgo.com/?q=" + search.Placeholder},
		{Name: "Perplexity", URL: "https://www.perplexity.ai/search?q=" + search.Placeholder},
	}
}

// LoadEngines reads the registry from path. Entries without a name or whose
// template lacks the {query} placeholder are dropped silently; if nothing
// valid remains (including a missing or unparseable file), the built-in
// defaults are substituted so a broken config never blocks usage.
func LoadEngines(path string) search.Registry {
	var file enginesFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return DefaultEngines()
	}

	var reg search.Registry
	for _, e := range file.Engine {
		if e.Name == "" || !strings.Contains(e.URL, search.Placeholder) {
			continue
		}
		reg = append(reg, search.Engine{Name: e.Name, URL: e.URL})
	}
	if len(reg) == 0 {
		return DefaultEngines()
	}
	return reg
}

// SaveEngines writes the registry to path in file order.
func SaveEngines(reg search.Registry, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file := enginesFile{Engine: make([]engineEntry, len(reg))}
	for i, e := range reg {
		file.Engine[i] = engineEntry{Name: e.Name, URL: e.URL}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(file)
}
