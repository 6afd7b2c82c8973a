// browsebot is a command-line harness for the browser assistant's
// conversation engine: a chat REPL over the configured LLM provider with the
// full browsing and bookmark tool set wired against an HTTP page bridge.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	version    = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "browsebot",
	Short: "Chat with an AI assistant about web pages",
	Long: `browsebot runs the browser assistant's conversation engine from the
terminal. It talks to the configured LLM provider (Gemini, Mistral, or
Perplexity), can ground answers in a page fetched over HTTP, and — when tool
use is enabled — lets the model search, navigate, and manage bookmarks.

Quick start:
  browsebot config set gemini-api-key <key>   # store a provider key
  browsebot chat --url https://example.com    # chat about a page
  browsebot providers                         # list providers and models`,
	Version: version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default ~/.browsebot/config.json)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
