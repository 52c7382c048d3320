// Package photos discovers photo files and orders them deterministically for
// the plan builder.
package photos

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"slidecast/internal/services"
)

var validExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".bmp":  {},
	".gif":  {},
	".tiff": {},
}

// Scan lists the photo files directly inside dir, sorted case-insensitively
// by filename so the clip order is stable across filesystems.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, services.Wrap(services.ErrNotFound, "photos", "scan",
				fmt.Sprintf("photos folder not found: %s", dir), nil)
		}
		return nil, fmt.Errorf("read photos folder %s: %w", dir, err)
	}

	var found []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := validExtensions[ext]; !ok {
			continue
		}
		found = append(found, filepath.Join(dir, entry.Name()))
	}

	if len(found) == 0 {
		return nil, services.Wrap(services.ErrValidation, "photos", "scan",
			fmt.Sprintf("no photos found in %s", dir), nil)
	}

	Sort(found)
	return found, nil
}

// Sort orders paths by their base filename, case-insensitively. Ties between
// names differing only in case resolve by full path so the order stays total.
func Sort(paths []string) {
	collator := collate.New(language.Und, collate.IgnoreCase)
	sort.Slice(paths, func(i, j int) bool {
		cmp := collator.CompareString(filepath.Base(paths[i]), filepath.Base(paths[j]))
		if cmp != 0 {
			return cmp < 0
		}
		return paths[i] < paths[j]
	})
}
