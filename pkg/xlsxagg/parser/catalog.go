package parser

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/xlsxagg/pkg/xlsxagg/models"
	"go.uber.org/zap"
)

// WorkbookExt is the only file extension the catalog considers.
const WorkbookExt = ".xlsx"

var errNoKeySeparator = errors.New("missing '=' before order key")

// BuildCatalog lists dir and returns its numbered workbooks ordered by key.
// Files named like x=<int>.xlsx are kept; other .xlsx files are skipped and
// logged. A directory that cannot be listed yields a *models.DirectoryAccessError.
func BuildCatalog(dir string, logger *zap.Logger) (*models.Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error("failed to read source directory", zap.String("dir", dir), zap.Error(err))
		return nil, &models.DirectoryAccessError{Dir: dir, Err: err}
	}

	catalog := &models.Catalog{Dir: dir}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, WorkbookExt) {
			continue
		}

		key, err := ParseOrderKey(name)
		if err != nil {
			perr := &models.FileNameParseError{Name: name, Err: err}
			logger.Warn("skipping file without order key",
				zap.String("file", name),
				zap.Error(perr))
			catalog.Skipped = append(catalog.Skipped, models.SkippedFile{Name: name, Reason: err.Error()})
			continue
		}

		catalog.Records = append(catalog.Records, models.SourceRecord{
			OrderKey: key,
			Path:     filepath.Join(dir, name),
		})
	}

	sort.SliceStable(catalog.Records, func(i, j int) bool {
		return catalog.Records[i].OrderKey < catalog.Records[j].OrderKey
	})

	for i := 1; i < len(catalog.Records); i++ {
		prev, cur := catalog.Records[i-1], catalog.Records[i]
		if prev.OrderKey == cur.OrderKey {
			logger.Warn("duplicate order key",
				zap.Int("key", cur.OrderKey),
				zap.String("first", filepath.Base(prev.Path)),
				zap.String("second", filepath.Base(cur.Path)))
		}
	}

	logger.Debug("catalog built",
		zap.String("dir", dir),
		zap.Int("records", len(catalog.Records)),
		zap.Int("skipped", len(catalog.Skipped)))

	return catalog, nil
}

// ParseOrderKey extracts the integer from a name of the form <prefix>=<int>.<ext>.
// The key is the text after the first '=' up to the next '=' or '.'.
func ParseOrderKey(name string) (int, error) {
	_, rest, found := strings.Cut(name, "=")
	if !found {
		return 0, errNoKeySeparator
	}
	rest, _, _ = strings.Cut(rest, "=")
	digits, _, _ := strings.Cut(rest, ".")

	key, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil {
		return 0, err
	}
	return key, nil
}
