package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errClusterNameRequired = errors.New("cluster name is required")
	errClusterNameInvalid  = errors.New("cluster name must be 1-32 lowercase alphanumeric characters or hyphens, starting and ending with alphanumeric")
	errPathRequired        = errors.New("hosted cluster path is required")
	errRegistryRequired    = errors.New("registry reference is required")
	errVersionRequired     = errors.New("version is required")
	errMemoryInvalid       = errors.New("invalid memory size (expected e.g. 12Gi)")
	errQuotaInvalid        = errors.New("quota must be a positive whole number of Gi")
)
