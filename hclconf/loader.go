package hclconf

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/configo/conf"
	"github.com/vk/configo/internal/ctxlog"
	"github.com/vk/configo/internal/fsutil"
	"github.com/vk/configo/param"
	"github.com/vk/configo/registry"
	"github.com/vk/configo/regkey"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// manifestExtension is the file suffix the loader picks up when walking a
// directory.
const manifestExtension = ".hcl"

// Registration pairs a registration key with the configuration factory
// translated from its manifest block.
type Registration struct {
	Key     regkey.Key
	Factory conf.Factory
}

// Loader parses HCL configuration manifests.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load walks the given paths (files or directories), parses every manifest
// file found, and returns the translated registrations in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]Registration, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL manifest loading started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, manifestExtension)
		if err != nil {
			return nil, fmt.Errorf("discovering manifests under %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	parser := hclparse.NewParser()
	var registrations []Registration

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", file, diags)
		}

		for _, block := range root.Configurations {
			reg, err := translateConfiguration(ctx, block)
			if err != nil {
				return nil, fmt.Errorf("in manifest %s: %w", file, err)
			}
			registrations = append(registrations, reg)
		}
	}

	logger.Debug("HCL manifest loading complete.", "registrations", len(registrations))
	return registrations, nil
}

// LoadInto loads manifests and registers every configuration into the
// registry, expanding variant parameters into one key per combination. It
// returns all registered keys.
func (l *Loader) LoadInto(ctx context.Context, r *registry.Registry, paths ...string) ([]regkey.Key, error) {
	registrations, err := l.Load(ctx, paths...)
	if err != nil {
		return nil, err
	}

	var keys []regkey.Key
	for _, reg := range registrations {
		registered, err := r.AddConfigurationVariants(reg.Key, reg.Factory)
		if err != nil {
			return nil, err
		}
		keys = append(keys, registered...)
	}
	return keys, nil
}

// translateConfiguration converts one decoded `configuration` block into a
// key and factory. All lookups that can fail (type keywords, range names,
// predicate names) fail here, at load time.
func translateConfiguration(ctx context.Context, block *configurationBlock) (Registration, error) {
	// An empty namespace attribute falls back to the default namespace
	// inside regkey.New.
	key, err := regkey.New(block.Name, block.Tags, block.Namespace)
	if err != nil {
		return Registration{}, fmt.Errorf("configuration %q: %w", block.Name, err)
	}

	prototype := conf.New()
	for _, pb := range block.Params {
		p, err := translateParam(ctx, pb)
		if err != nil {
			return Registration{}, fmt.Errorf("configuration %q: %w", block.Name, err)
		}
		prototype.Add(p)
	}
	for _, cb := range block.Conditions {
		if err := prototype.AddNamedCondition(cb.Name, cb.Predicate, cb.Params...); err != nil {
			return Registration{}, fmt.Errorf("configuration %q, condition %q: %w", block.Name, cb.Name, err)
		}
	}

	return Registration{Key: key, Factory: prototype.Copy}, nil
}

// translateParam converts one decoded `param` block into a parameter.
func translateParam(ctx context.Context, pb *paramBlock) (param.Parameter, error) {
	typeHint, err := typeExprToCtyType(ctx, pb.Type)
	if err != nil {
		return param.Parameter{}, fmt.Errorf("param %q: %w", pb.Name, err)
	}

	value := cty.NilVal
	if pb.Default != nil && !pb.Default.IsNull() {
		value, err = convertLiteral(*pb.Default, typeHint)
		if err != nil {
			return param.Parameter{}, fmt.Errorf("param %q: invalid default: %w", pb.Name, err)
		}
	}

	var allowedRange *param.Range
	if pb.Range != "" {
		r, ok := param.LookupRange(pb.Range)
		if !ok {
			return param.Parameter{}, fmt.Errorf("param %q: unknown range %q", pb.Name, pb.Range)
		}
		allowedRange = r
	}

	var variants []cty.Value
	if pb.Variants != nil && !pb.Variants.IsNull() {
		if !pb.Variants.CanIterateElements() {
			return param.Parameter{}, fmt.Errorf("param %q: variants must be a list of values", pb.Name)
		}
		for _, raw := range pb.Variants.AsValueSlice() {
			v, err := convertLiteral(raw, typeHint)
			if err != nil {
				return param.Parameter{}, fmt.Errorf("param %q: invalid variant value: %w", pb.Name, err)
			}
			variants = append(variants, v)
		}
	}

	return param.Parameter{
		Name:        pb.Name,
		Value:       value,
		TypeHint:    typeHint,
		Description: pb.Description,
		Required:    pb.Required,
		Range:       allowedRange,
		Variants:    variants,
		Tags:        param.TagSet(pb.Tags...),
	}, nil
}

// convertLiteral coerces a literal manifest value to the declared type. A
// dynamic type hint accepts the value as written.
func convertLiteral(v cty.Value, typeHint cty.Type) (cty.Value, error) {
	if typeHint == cty.DynamicPseudoType {
		return v, nil
	}
	return convert.Convert(v, typeHint)
}
