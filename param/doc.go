// Package param defines the single named, typed, constrained value holder
// that configurations are made of.
//
// Values are cty.Value so that one representation covers in-code registration,
// HCL manifests and injection into component structs. An unset parameter holds
// cty.NilVal, which is distinct from an explicit null: a parameter can be
// "not provided" without committing to any type.
//
// Allowed ranges are named predicates rather than opaque closures, so that a
// failing validation can always report which constraint was violated and so
// that manifests can reference ranges by name.
package param
