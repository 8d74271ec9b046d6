package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tablex/internal"
	"tablex/internal/config"
	"tablex/internal/sheet"
)

// Mirror receives every extracted dataset after its JSON file is written.
type Mirror interface {
	ReplaceProfit([]internal.ProfitRecord) error
	ReplaceCatalog([]internal.CatalogRecord) error
	ReplaceQueue([]internal.QueueEntry) error
	ReplaceStaff([]internal.StaffEntry) error
	ReplaceDealers([]internal.DealerEntry) error
}

type Summary struct {
	Profit    int
	Catalog   int
	Queue     int
	Staff     int
	Dealers   int
	OutputDir string
}

// Runner runs the five extractions in order. Each workbook is opened and
// closed inside its own step.
type Runner struct {
	cfg    config.Config
	log    *zap.Logger
	mirror Mirror
}

// NewRunner builds a Runner; mirror may be nil.
func NewRunner(cfg config.Config, log *zap.Logger, mirror Mirror) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{cfg: cfg, log: log, mirror: mirror}
}

func (r *Runner) Run() (Summary, error) {
	summary := Summary{OutputDir: r.cfg.OutputDir}

	r.log.Info("parsing profit analysis", zap.String("step", "1/5"), zap.String("path", r.cfg.QuoteTablePath))
	var profit []internal.ProfitRecord
	err := withWorkbook(r.cfg.QuoteTablePath, sheet.Open, func(wb sheet.Workbook) error {
		var err error
		profit, err = ExtractProfit(wb)
		return err
	})
	if err != nil {
		return summary, err
	}
	if err := writeOutput(r, ProfitFile, profit, func(m Mirror) error { return m.ReplaceProfit(profit) }); err != nil {
		return summary, err
	}
	summary.Profit = len(profit)

	r.log.Info("parsing product catalog", zap.String("step", "2/5"), zap.String("path", r.cfg.QuoteTablePath))
	var catalog []internal.CatalogRecord
	err = withWorkbook(r.cfg.QuoteTablePath, sheet.Open, func(wb sheet.Workbook) error {
		var err error
		catalog, err = ExtractCatalog(wb)
		return err
	})
	if err != nil {
		return summary, err
	}
	if err := writeOutput(r, CatalogFile, catalog, func(m Mirror) error { return m.ReplaceCatalog(catalog) }); err != nil {
		return summary, err
	}
	summary.Catalog = len(catalog)

	r.log.Info("parsing quote queue", zap.String("step", "3/5"), zap.String("path", r.cfg.QuoteQueuePath))
	var queue []internal.QueueEntry
	err = withWorkbook(r.cfg.QuoteQueuePath, r.openLenient, func(wb sheet.Workbook) error {
		var err error
		queue, err = ExtractQueue(wb, r.cfg.QueueDefaultYear)
		return err
	})
	if err != nil {
		return summary, err
	}
	if err := writeOutput(r, QueueFile, queue, func(m Mirror) error { return m.ReplaceQueue(queue) }); err != nil {
		return summary, err
	}
	summary.Queue = len(queue)

	r.log.Info("parsing staff and dealer lists", zap.String("step", "4-5/5"), zap.String("path", r.cfg.QuoteTemplatePath))
	var lists Dropdowns
	err = withWorkbook(r.cfg.QuoteTemplatePath, sheet.Open, func(wb sheet.Workbook) error {
		var err error
		lists, err = ExtractDropdowns(wb)
		return err
	})
	if err != nil {
		return summary, err
	}
	if err := writeOutput(r, StaffFile, lists.Staff, func(m Mirror) error { return m.ReplaceStaff(lists.Staff) }); err != nil {
		return summary, err
	}
	if err := writeOutput(r, DealersFile, lists.Dealers, func(m Mirror) error { return m.ReplaceDealers(lists.Dealers) }); err != nil {
		return summary, err
	}
	summary.Staff = len(lists.Staff)
	summary.Dealers = len(lists.Dealers)

	return summary, nil
}

// writeOutput writes one dataset to its JSON file and, when configured, the mirror.
func writeOutput[T any](r *Runner, filename string, records []T, mirror func(Mirror) error) error {
	path, err := WriteJSON(r.cfg.OutputDir, filename, records)
	if err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	r.log.Info("wrote output", zap.String("file", filename), zap.String("path", path), zap.Int("records", len(records)))

	if r.mirror == nil {
		return nil
	}
	if err := mirror(r.mirror); err != nil {
		return fmt.Errorf("mirror %s: %w", filename, err)
	}
	return nil
}

// openLenient falls back to the raw package reader when excelize rejects
// the workbook.
func (r *Runner) openLenient(path string) (sheet.Workbook, error) {
	wb, err := sheet.Open(path)
	if err == nil {
		return wb, nil
	}
	r.log.Warn("excelize could not open workbook, reading raw sheet XML", zap.String("path", path), zap.Error(err))
	raw, rawErr := sheet.OpenRaw(path)
	if rawErr != nil {
		return nil, errors.Join(err, rawErr)
	}
	return raw, nil
}

// withWorkbook opens path, runs fn and always closes the workbook.
func withWorkbook(path string, open func(string) (sheet.Workbook, error), fn func(sheet.Workbook) error) (err error) {
	wb, err := open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return fn(wb)
}
