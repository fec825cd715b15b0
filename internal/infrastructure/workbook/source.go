package workbook

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"plumbing_estimator/internal/domain/catalog"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase/interfaces"
	"plumbing_estimator/pkg/config"
	"plumbing_estimator/pkg/logger"

	"github.com/xuri/excelize/v2"
)

var ErrNoCatalogFile = errors.New("no catalog file configured")

// Source reads supplier catalogs and predetermined product lists from xlsx
// workbooks. The first sheet of each workbook is used and its first row
// names the columns.
type Source struct {
	dir      string
	catalogs map[entities.SupplierID]string
	lists    map[string]string
	log      *logger.Logger
}

var (
	_ interfaces.ICatalogSource     = (*Source)(nil)
	_ interfaces.IProductListSource = (*Source)(nil)
)

func NewSource(cfg config.CatalogConfig, log *logger.Logger) *Source {
	if log == nil {
		log = logger.Nop()
	}
	lists := make(map[string]string, len(cfg.Lists))
	for name, file := range cfg.Lists {
		lists[listKey(name)] = strings.TrimSpace(file)
	}
	return &Source{
		dir: cfg.Dir,
		catalogs: map[entities.SupplierID]string{
			entities.SupplierSupply1: cfg.Supply1File,
			entities.SupplierSupply2: cfg.Supply2File,
			entities.SupplierSupply3: cfg.Supply3File,
			entities.SupplierSupply4: cfg.Supply4File,
		},
		lists: lists,
		log:   log,
	}
}

func (s *Source) LoadCatalog(ctx context.Context, supplier entities.SupplierID) ([]entities.CatalogRecord, error) {
	file := strings.TrimSpace(s.catalogs[supplier])
	if file == "" {
		return nil, fmt.Errorf("%w for %s", ErrNoCatalogFile, supplier)
	}
	rows, err := ReadRows(s.path(file))
	if err != nil {
		return nil, err
	}
	records := catalog.RecordsFromRaw(rows)
	s.log.Debug(s.log.WithFields(ctx, map[string]any{
		"supplier": string(supplier),
		"file":     file,
		"rows":     len(rows),
		"records":  len(records),
	}), "[catalog][workbook] catalog read")
	return records, nil
}

// LoadProductList resolves name through the configured lists. Names that are
// not configured and files that do not exist both report
// interfaces.ErrProductListNotFound.
func (s *Source) LoadProductList(ctx context.Context, name string) ([]map[string]any, error) {
	file, ok := s.lists[listKey(name)]
	if !ok || file == "" {
		return nil, interfaces.ErrProductListNotFound
	}
	rows, err := ReadRows(s.path(file))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, interfaces.ErrProductListNotFound
	}
	if err != nil {
		return nil, err
	}
	s.log.Debug(s.log.WithFields(ctx, map[string]any{
		"list": name,
		"rows": len(rows),
	}), "[material_list][workbook] product list read")
	return rows, nil
}

func (s *Source) path(file string) string {
	if filepath.IsAbs(file) || s.dir == "" {
		return file
	}
	return filepath.Join(s.dir, file)
}

func listKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ReadRows returns the data rows of the first sheet keyed by header. Blank
// rows are skipped and cells past the last header are ignored. Cells are read
// unformatted; numeric cells under a date header come back as time.Time.
func ReadRows(path string) ([]map[string]any, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read excel: %w", err)
	}
	var date1904 bool
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}
	if len(rows) < 2 {
		return []map[string]any{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	out := make([]map[string]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]any, len(header))
		blank := true
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			rec[header[i]] = cell
			if catalog.IsDateColumn(header[i]) {
				if t, ok := serialDate(cell, date1904); ok {
					rec[header[i]] = t
				}
			}
			if strings.TrimSpace(cell) != "" {
				blank = false
			}
		}
		if !blank {
			out = append(out, rec)
		}
	}
	return out, nil
}

func serialDate(cell string, date1904 bool) (time.Time, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || v <= 0 {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(v, date1904)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
