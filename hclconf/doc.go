// Package hclconf loads configuration registrations from HCL manifest files.
// A manifest declares `configuration` blocks with typed `param` and named
// `condition` blocks; the loader translates them into configuration factories
// keyed by registration keys, ready to be added to a registry.
package hclconf
