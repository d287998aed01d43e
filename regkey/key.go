package regkey

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultNamespace is used when a key is constructed with an empty namespace.
const DefaultNamespace = "default"

// Key identifies a registered configuration. Two keys address the same
// registry entry iff name, namespace and the tag set match exactly; tag order
// never matters. Keys are immutable once constructed: the constructors copy
// the tag set they are given, and accessors return copies.
type Key struct {
	Name      string
	Namespace string
	Tags      map[string]struct{}
}

// New builds a Key from its parts, applying DefaultNamespace when namespace is
// empty. Every segment is validated against the canonical encoding charset.
func New(name string, tags []string, namespace string) (Key, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if err := validateSegment(name); err != nil {
		return Key{}, fmt.Errorf("invalid key name: %w", err)
	}
	if err := validateSegment(namespace); err != nil {
		return Key{}, fmt.Errorf("invalid key namespace: %w", err)
	}

	tagSet := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if err := validateSegment(tag); err != nil {
			return Key{}, fmt.Errorf("invalid key tag: %w", err)
		}
		tagSet[tag] = struct{}{}
	}

	return Key{Name: name, Namespace: namespace, Tags: tagSet}, nil
}

// MustNew is New for statically known key parts; it panics on invalid input.
func MustNew(name string, tags []string, namespace string) Key {
	k, err := New(name, tags, namespace)
	if err != nil {
		panic(err)
	}
	return k
}

// WithTags returns a copy of the key whose tag set is extended by the given
// tags. The receiver is left untouched.
func (k Key) WithTags(tags ...string) (Key, error) {
	merged := k.SortedTags()
	merged = append(merged, tags...)
	return New(k.Name, merged, k.Namespace)
}

// SortedTags returns the tag set as a sorted slice.
func (k Key) SortedTags() []string {
	tags := make([]string, 0, len(k.Tags))
	for tag := range k.Tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// String serializes the key into its canonical `name--{tags}--namespace` form.
func (k Key) String() string {
	var sb strings.Builder
	sb.WriteString(k.Name)
	sb.WriteString(attributeSeparator)
	sb.WriteByte('{')
	sb.WriteString(strings.Join(k.SortedTags(), ","))
	sb.WriteByte('}')
	sb.WriteString(attributeSeparator)
	sb.WriteString(k.Namespace)
	return sb.String()
}

// Equal reports whether two keys address the same registry entry.
func (k Key) Equal(other Key) bool {
	if k.Name != other.Name || k.Namespace != other.Namespace {
		return false
	}
	if len(k.Tags) != len(other.Tags) {
		return false
	}
	for tag := range k.Tags {
		if _, ok := other.Tags[tag]; !ok {
			return false
		}
	}
	return true
}

// PartialMatch reports whether two keys agree on name and namespace and one
// tag set is a subset of the other. It is the relaxed lookup used to inspect
// families of variant registrations.
func (k Key) PartialMatch(other Key) bool {
	if k.Name != other.Name || k.Namespace != other.Namespace {
		return false
	}
	small, large := k.Tags, other.Tags
	if len(small) > len(large) {
		small, large = large, small
	}
	for tag := range small {
		if _, ok := large[tag]; !ok {
			return false
		}
	}
	return true
}
