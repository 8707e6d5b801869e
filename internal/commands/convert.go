package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kbc2qif/kbc2qif/internal/config"
	"github.com/kbc2qif/kbc2qif/internal/importer"
	"github.com/kbc2qif/kbc2qif/internal/model"
	"github.com/kbc2qif/kbc2qif/internal/qif"
)

type convertOptions struct {
	configPath  string
	envFile     string
	writeConfig string
	output      string
	encoding    string
	format      string
	verbose     bool
}

func runConvert(stdout io.Writer, log *logrus.Logger, args []string, opts convertOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if opts.writeConfig != "" {
		if err := config.Save(opts.writeConfig, cfg); err != nil {
			return err
		}
		log.WithField("path", opts.writeConfig).Debug("Convert.ConfigSaved")
	}

	factory := importer.DefaultRegistry().Get(cfg.Format)
	if factory == nil {
		return fmt.Errorf("unknown format %q (known: %s)", cfg.Format, strings.Join(importer.DefaultRegistry().Formats(), ", "))
	}

	inPath := args[0]
	extractor := factory(importer.Options{
		Asset:    model.NewAccount(args[1]),
		Income:   model.NewIncomeAccount(args[2]),
		Expenses: model.NewAccount(args[3]),
		Columns: importer.Columns{
			Amount:      cfg.Columns.Amount,
			Date:        cfg.Columns.Date,
			Description: cfg.Columns.Description,
			Memo:        cfg.Columns.Memo,
		},
		Delimiter: cfg.DelimiterRune(),
	})

	log.WithFields(logrus.Fields{
		"input":    inPath,
		"format":   extractor.Format(),
		"encoding": cfg.Encoding,
	}).Debug("Convert.Start")

	transfers, err := readTransfers(inPath, cfg.Encoding, extractor)
	if err != nil {
		return err
	}

	accounts, _ := qif.Group(transfers)
	for _, t := range transfers {
		if !t.Balanced() {
			log.WithField("date", t.Date.Format("2006-01-02")).Warnf("splits do not add up to %s", t.Amount.StringFixed(2))
		}
	}

	if err := writeQIF(stdout, opts.output, transfers); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"transfers": len(transfers),
		"accounts":  len(accounts),
		"output":    outputName(opts.output),
	}).Debug("Convert.Complete")
	return nil
}

// loadConfig layers defaults, the config file, the environment and flags.
func loadConfig(opts convertOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnv(cfg, opts.envFile); err != nil {
		return nil, err
	}

	if opts.format != "" {
		cfg.Format = opts.format
	}
	if opts.encoding != "" {
		cfg.Encoding = opts.encoding
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// readTransfers reads every transfer before anything is written, so a bad
// row never leaves partial QIF behind.
func readTransfers(path, encoding string, e importer.Extractor) ([]model.Transfer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	r, err := importer.Decode(f, encoding)
	if err != nil {
		return nil, err
	}

	transfers, err := importer.Collect(e.Ingest(r))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return transfers, nil
}

// writeQIF writes to stdout, or to outPath through a temp file that is
// renamed into place once complete.
func writeQIF(stdout io.Writer, outPath string, transfers []model.Transfer) error {
	if outPath == "" || outPath == "-" {
		return qif.DeclareAccountsAndTransactions(stdout, transfers)
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), "."+filepath.Base(outPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := qif.DeclareAccountsAndTransactions(tmp, transfers); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return fmt.Errorf("moving output into place: %w", err)
	}
	committed = true
	return nil
}

func outputName(outPath string) string {
	if outPath == "" || outPath == "-" {
		return "stdout"
	}
	return outPath
}
