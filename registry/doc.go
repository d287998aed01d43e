// Package registry provides the catalog binding registration keys to
// configuration factories and component constructors, and the entry point for
// building component instances from a key.
//
// A Registry is an explicit instance, not process-wide state: construct one
// with New, thread it through registration and build calls, and each test can
// own its own. Registration is expected to happen in a single phase at
// startup; the registry does no locking, so concurrent mutation must be
// serialized by the caller.
//
// Every build is independent: a fresh configuration from the registered
// factory, validated strictly, then a fresh component instance with the
// parameter values injected. Nothing is cached between builds.
package registry
