// Package regkey defines the registration key: the (name, tags, namespace)
// identifier under which a configuration is registered and later resolved.
//
// Keys have a canonical textual encoding, `name--{tag1,tag2}--namespace`, so
// that they can be written into configuration files or passed on a command
// line and parsed back. Parse and String round-trip exactly for every valid
// key; tags are rendered sorted so the encoding is order-independent.
package regkey
