// Package wizard implements the interactive prompts for `hcpconf init`.
//
// The wizard walks through the hub-cluster toggles and an optional first
// hosted-cluster definition using form groups, collects the answers in a
// [Result], and builds a config.Config from them.
package wizard
