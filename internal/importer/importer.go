package importer

import (
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/kbc2qif/kbc2qif/internal/model"
)

// DefaultDelimiter separates fields in KBC exports.
const DefaultDelimiter = ';'

// Columns names the CSV columns an extractor reads.
type Columns struct {
	Amount      string
	Date        string
	Description string
	Memo        string
}

// DefaultColumns returns the column names used in KBC exports.
func DefaultColumns() Columns {
	return Columns{
		Amount:      "bedrag",
		Date:        "datum",
		Description: "omschrijving",
		Memo:        "vrije mededeling",
	}
}

// Options configures an Extractor.
type Options struct {
	Asset     model.Account
	Income    model.Account
	Expenses  model.Account
	Columns   Columns // zero fields fall back to the format's defaults
	Delimiter rune    // 0 = format default
}

// Extractor converts a bank CSV export into transfers.
type Extractor interface {
	Ingest(r io.Reader) iter.Seq2[model.Transfer, error]
	Format() string
}

// Factory builds an Extractor for one conversion.
type Factory func(opts Options) Extractor

// Registry holds named extractor factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory. Panics on duplicate format.
func (r *Registry) Register(format string, f Factory) {
	key := strings.ToLower(format)
	if _, ok := r.factories[key]; ok {
		panic("duplicate extractor format: " + key)
	}
	r.factories[key] = f
}

// Get returns the factory for format, or nil.
func (r *Registry) Get(format string) Factory {
	return r.factories[strings.ToLower(format)]
}

// Formats lists the registered format names in sorted order.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultRegistry returns a registry with all built-in extractors.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("kbc", func(opts Options) Extractor { return NewKBCExtractor(opts) })
	return r
}
