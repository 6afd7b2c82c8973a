package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zenbrowse/browsebot/pkg/llm"
	"github.com/zenbrowse/browsebot/pkg/llm/gemini"
	"github.com/zenbrowse/browsebot/pkg/llm/mistral"
	"github.com/zenbrowse/browsebot/pkg/llm/perplexity"
)

var (
	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List providers, their models, and configuration state",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		active := settings.Provider()

		infos := []llm.Info{
			gemini.New("").Info(),
			mistral.New("").Info(),
			perplexity.New("").Info(),
		}
		for _, info := range infos {
			marker := "  "
			name := info.Name
			if info.Name == active {
				marker = activeStyle.Render("* ")
				name = activeStyle.Render(info.Name)
			}
			keyState := dimStyle.Render("no API key")
			if settings.APIKey(info.Name) != "" {
				keyState = "API key set"
			}
			fmt.Printf("%s%s %s (%s)\n", marker, name, labelStyle.Render(info.Label), keyState)
			fmt.Printf("    model: %s\n", settings.Model(info.Name))
			fmt.Printf("    %s\n", dimStyle.Render("available: "+strings.Join(info.Models, ", ")))
			if info.APIKeyURL != "" {
				fmt.Printf("    %s\n", dimStyle.Render("keys: "+info.APIKeyURL))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
