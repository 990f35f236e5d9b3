// Package cmd provides the command-line interface for Lumen.
package cmd

// CLI is the root command structure for Kong.
type CLI struct {
	View ViewCmd `cmd:"" default:"withargs" help:"View one or more Markdown files"`
}
