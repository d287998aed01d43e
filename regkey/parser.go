package regkey

import (
	"fmt"
	"regexp"
	"strings"
)

// attributeSeparator splits the three key attributes in the canonical
// encoding. Segments may contain single hyphens but never the separator
// itself, which keeps parsing unambiguous.
const attributeSeparator = "--"

// segmentRegex constrains names, namespaces and tags. `=` is included because
// variant tags are rendered as `param=value` pairs.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_./=-]+$`)

func validateSegment(segment string) error {
	if segment == "" {
		return fmt.Errorf("segment cannot be empty")
	}
	if strings.Contains(segment, attributeSeparator) {
		return fmt.Errorf("segment %q contains the reserved separator %q", segment, attributeSeparator)
	}
	if !segmentRegex.MatchString(segment) {
		return fmt.Errorf("invalid segment format: %q", segment)
	}
	return nil
}

// Parse creates a Key by parsing its canonical string representation, e.g.
// `data_loader--{tabular}--showcase`. The tags attribute must always be
// present; an empty tag set is written as `{}`.
func Parse(rawKey string) (Key, error) {
	if rawKey == "" {
		return Key{}, fmt.Errorf("key string cannot be empty")
	}

	parts := strings.Split(rawKey, attributeSeparator)
	if len(parts) != 3 {
		return Key{}, fmt.Errorf("invalid key format: %q (want name--{tags}--namespace)", rawKey)
	}

	tagsPart := parts[1]
	if !strings.HasPrefix(tagsPart, "{") || !strings.HasSuffix(tagsPart, "}") {
		return Key{}, fmt.Errorf("invalid tags attribute %q: must be brace-enclosed", tagsPart)
	}

	var tags []string
	if inner := tagsPart[1 : len(tagsPart)-1]; inner != "" {
		tags = strings.Split(inner, ",")
	}

	key, err := New(parts[0], tags, parts[2])
	if err != nil {
		return Key{}, fmt.Errorf("invalid key %q: %w", rawKey, err)
	}
	return key, nil
}
