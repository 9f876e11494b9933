// Package handlers contains the execution logic behind each hcpconf command.
package handlers

import (
	"github.com/imamik/hcpconf/internal/config"
)

// ResolveConfigPath picks the configuration file for a command invocation.
// An explicit positional argument wins; otherwise the file is discovered
// by walking up from the current directory.
func ResolveConfigPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return config.FindConfigFile()
}
