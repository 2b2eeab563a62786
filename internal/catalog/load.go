package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed bank/*.json
var bankFS embed.FS

// LoadBuiltin loads the question bank embedded in the binary.
func LoadBuiltin() (*Catalog, error) {
	sets, err := loadFS(bankFS, "bank")
	if err != nil {
		return nil, fmt.Errorf("load built-in bank: %w", err)
	}
	return New(sets), nil
}

// Load builds the catalog from the embedded bank plus, when dir is non-empty
// and exists, any *.json files found there. A user set with the same id as a
// built-in set replaces it.
func Load(dir string) (*Catalog, error) {
	sets, err := loadFS(bankFS, "bank")
	if err != nil {
		return nil, fmt.Errorf("load built-in bank: %w", err)
	}

	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			extra, err := loadFS(os.DirFS(dir), ".")
			if err != nil {
				return nil, fmt.Errorf("load bank dir %s: %w", dir, err)
			}
			sets = merge(sets, extra)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat bank dir %s: %w", dir, err)
		}
	}

	return New(sets), nil
}

// ParseSet decodes and validates a single bank file.
func ParseSet(raw []byte) (*QuestionSet, error) {
	if err := ValidateBankFile(raw); err != nil {
		return nil, err
	}
	var set QuestionSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("decode question set: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

func loadFS(fsys fs.FS, root string) ([]QuestionSet, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, err
	}

	var sets []QuestionSet
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		raw, err := fs.ReadFile(fsys, filepath.Join(root, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		set, err := ParseSet(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		sets = append(sets, *set)
	}

	sort.Slice(sets, func(i, j int) bool { return sets[i].ID < sets[j].ID })
	return sets, nil
}

func merge(base, extra []QuestionSet) []QuestionSet {
	byID := make(map[string]int, len(base))
	for i, s := range base {
		byID[s.ID] = i
	}
	for _, s := range extra {
		if i, ok := byID[s.ID]; ok {
			base[i] = s
			continue
		}
		byID[s.ID] = len(base)
		base = append(base, s)
	}
	sort.Slice(base, func(i, j int) bool { return base[i].ID < base[j].ID })
	return base
}
