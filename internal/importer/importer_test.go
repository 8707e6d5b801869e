package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register("kbc", func(opts Options) Extractor { return NewKBCExtractor(opts) })
	f := r.Get("kbc")
	require.NotNil(t, f)
	assert.Equal(t, "kbc", f(Options{}).Format())
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("KBC"))
	assert.NotNil(t, r.Get("Kbc"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := DefaultRegistry()
	assert.Panics(t, func() {
		r.Register("KBC", func(opts Options) Extractor { return NewKBCExtractor(opts) })
	})
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"kbc"}, r.Formats())

	e := r.Get("kbc")(Options{Asset: checking, Income: salary, Expenses: spending})
	transfers, err := Collect(e.Ingest(strings.NewReader(kbcHeader + "05/03/2021;X;1,00;\n")))
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, salary, transfers[0].Splits[0].Target)
}
