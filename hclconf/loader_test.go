package hclconf

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/configo/internal/ctxlog"
	"github.com/vk/configo/registry"
	"github.com/zclconf/go-cty/cty"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

const dataLoaderManifest = `
configuration "data_loader" {
  namespace = "showcase"

  param "samples_amount" {
    type    = number
    default = 100
    range   = "positive"
  }

  param "name" {
    type        = string
    required    = true
    description = "Dataset identifier."
  }

  param "has_val_split" {
    type    = bool
    default = true
  }

  param "has_test_split" {
    type    = bool
    default = true
  }

  condition "at_least_one_split" {
    predicate = "any_true"
    params    = ["has_val_split", "has_test_split"]
  }
}
`

func TestLoadTranslatesConfiguration(t *testing.T) {
	dir := writeManifest(t, "data_loader.hcl", dataLoaderManifest)

	regs, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, regs, 1)

	assert.Equal(t, "data_loader--{}--showcase", regs[0].Key.String())

	cfg := regs[0].Factory()
	require.Equal(t, 4, cfg.Len())

	samples, ok := cfg.Param("samples_amount")
	require.True(t, ok)
	assert.True(t, samples.Value.RawEquals(cty.NumberIntVal(100)))
	assert.Equal(t, cty.Number, samples.TypeHint)
	require.NotNil(t, samples.Range)
	assert.Equal(t, "positive", samples.Range.Name)

	name, ok := cfg.Param("name")
	require.True(t, ok)
	assert.True(t, name.Required)
	assert.False(t, name.IsSet())
	assert.Equal(t, "Dataset identifier.", name.Description)

	conds := cfg.Conditions()
	require.Len(t, conds, 1)
	assert.Equal(t, "at_least_one_split", conds[0].Name)
	assert.Equal(t, "any_true", conds[0].Predicate)
	assert.Equal(t, []string{"has_val_split", "has_test_split"}, conds[0].Params)
}

func TestLoadFactoryYieldsIndependentCopies(t *testing.T) {
	dir := writeManifest(t, "data_loader.hcl", dataLoaderManifest)

	regs, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	first := regs[0].Factory()
	require.NoError(t, first.Set("samples_amount", cty.NumberIntVal(7)))

	second := regs[0].Factory()
	v, ok := second.Get("samples_amount")
	require.True(t, ok)
	assert.True(t, v.RawEquals(cty.NumberIntVal(100)))
}

func TestLoadDefaultNamespaceAndCollectionTypes(t *testing.T) {
	dir := writeManifest(t, "tokenizer.hcl", `
configuration "tokenizer" {
  tags = ["text"]

  param "stop_words" {
    type    = list(string)
    default = ["a", "the"]
  }

  param "weights" {
    type = map(number)
  }
}
`)

	regs, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "tokenizer--{text}--default", regs[0].Key.String())

	cfg := regs[0].Factory()
	stop, ok := cfg.Param("stop_words")
	require.True(t, ok)
	assert.Equal(t, cty.List(cty.String), stop.TypeHint)
	assert.True(t, stop.Value.RawEquals(cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("the")})))

	weights, ok := cfg.Param("weights")
	require.True(t, ok)
	assert.Equal(t, cty.Map(cty.Number), weights.TypeHint)
	assert.False(t, weights.IsSet())
}

func TestLoadLogsTypeTranslation(t *testing.T) {
	dir := writeManifest(t, "tokenizer.hcl", `
configuration "tokenizer" {
  param "stop_words" {
    type = list(string)
  }
}
`)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	_, err := NewLoader().Load(ctx, dir)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Parsing type expression as a function call.")
	assert.Contains(t, buf.String(), "Parsing type expression as a primitive.")
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name     string
		manifest string
		contains string
	}{
		{
			name: "unknown range",
			manifest: `
configuration "c" {
  param "p" {
    type  = number
    range = "no_such_range"
  }
}
`,
			contains: "unknown range",
		},
		{
			name: "unknown predicate",
			manifest: `
configuration "c" {
  param "p" {
    type = bool
  }
  condition "check" {
    predicate = "no_such_predicate"
    params    = ["p"]
  }
}
`,
			contains: "unknown condition predicate",
		},
		{
			name: "unknown type keyword",
			manifest: `
configuration "c" {
  param "p" {
    type = widget
  }
}
`,
			contains: "unknown primitive type",
		},
		{
			name: "default incompatible with type",
			manifest: `
configuration "c" {
  param "p" {
    type    = number
    default = "not a number"
  }
}
`,
			contains: "invalid default",
		},
		{
			name:     "malformed file",
			manifest: `configuration "c" {`,
			contains: "failed to parse",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeManifest(t, "bad.hcl", tc.manifest)
			_, err := NewLoader().Load(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestLoadIntoExpandsVariants(t *testing.T) {
	dir := writeManifest(t, "fetcher.hcl", `
configuration "fetcher" {
  namespace = "net"

  param "method" {
    type     = string
    default  = "GET"
    variants = ["GET", "HEAD"]
  }

  param "compressed" {
    type     = bool
    default  = false
    variants = [true, false]
  }
}
`)

	r := registry.New()
	keys, err := NewLoader().LoadInto(context.Background(), r, dir)
	require.NoError(t, err)
	require.Len(t, keys, 4)

	for _, k := range keys {
		assert.True(t, r.Contains(k))
		cfg, err := r.BuildConfiguration(k)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Len())
	}
}

func TestLoadWalksMultipleFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`
configuration "alpha" {
  param "p" {
    type = string
  }
}
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`
configuration "beta" {
  param "p" {
    type = string
  }
}
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	regs, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, "alpha", regs[0].Key.Name)
	assert.Equal(t, "beta", regs[1].Key.Name)
}
