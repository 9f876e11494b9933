package config

import (
	"fmt"
	"strings"
)

// SchemaError reports a structurally unusable document: a missing top-level
// section or a section with the wrong shape. Documents failing with a
// SchemaError cannot be decoded at all.
type SchemaError struct {
	Section string
	Reason  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error in section %s: %s", e.Section, e.Reason)
}

// FieldError reports a single field whose value failed type coercion or a
// scalar range check. Path is the dotted path into the document, e.g.
// "ENV_DATA.clusters[prod].cpu_cores_per_hosted_cluster".
type FieldError struct {
	Path   string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("field %s: %s", e.Path, e.Reason)
}

// fieldPathFromDecodeError extracts the quoted field path from a
// mapstructure decode message. Messages look like
// "cannot decode 'ENV_DATA.platform' from bool into string" or
// "'DEPLOYMENT.cnv_deployment' expected type 'bool', got ...".
func fieldPathFromDecodeError(msg string) string {
	start := strings.Index(msg, "'")
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], "'")
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
