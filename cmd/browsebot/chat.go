package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zenbrowse/browsebot/pkg/agent"
	"github.com/zenbrowse/browsebot/pkg/types"
)

var chatURL string

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	citationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start a chat REPL against the configured provider. With --url the page
is fetched over HTTP and used to ground answers (and as the current page for
page-reading tools).

In-session commands:
  /provider <name>   switch provider (resets the conversation)
  /clear             clear the conversation history
  /url <link>        point the session at a different page
  /quit              exit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp(stdinGate{})
		if err != nil {
			return err
		}
		defer application.Close()

		if chatURL != "" {
			application.bridge.SetCurrentURL(chatURL)
		}

		return runChat(cmd.Context(), application)
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatURL, "url", "", "Page to chat about")
	rootCmd.AddCommand(chatCmd)
}

func runChat(ctx context.Context, application *app) error {
	engine := application.engine
	fmt.Println(noticeStyle.Render(fmt.Sprintf("browsebot — provider: %s", application.settings.Provider())))
	if application.settings.GodMode() {
		fmt.Println(noticeStyle.Render("tool use enabled"))
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Print(promptStyle.Render("you> ") + " ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := handleChatCommand(application, line); quit {
				return nil
			}
			continue
		}

		answer, err := engine.SendMessage(ctx, line, pageContext(application))
		if err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("error: %v", err)))
			continue
		}

		fmt.Println(answerStyle.Render(answer.Text))
		for _, c := range answer.Citations {
			fmt.Println(citationStyle.Render(fmt.Sprintf("  [%d] %q", c.ID, c.SourceQuote)))
		}
	}
}

// pageContext snapshots the bridge's current page for the outgoing turn.
func pageContext(application *app) *types.PageContext {
	url := application.bridge.CurrentURL()
	if url == "" {
		return nil
	}
	return &types.PageContext{URL: url}
}

func handleChatCommand(application *app, line string) (quit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return true
	case "/clear":
		application.engine.ClearData()
		fmt.Println(noticeStyle.Render("conversation cleared"))
	case "/provider":
		if len(fields) < 2 {
			fmt.Println(errorStyle.Render("usage: /provider <name>"))
			break
		}
		if err := application.engine.SetProvider(fields[1]); err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			break
		}
		fmt.Println(noticeStyle.Render("switched to " + fields[1] + " (conversation reset)"))
	case "/url":
		if len(fields) < 2 {
			fmt.Println(errorStyle.Render("usage: /url <link>"))
			break
		}
		application.bridge.SetCurrentURL(fields[1])
		fmt.Println(noticeStyle.Render("current page: " + fields[1]))
	default:
		fmt.Println(errorStyle.Render("unknown command " + fields[0]))
	}
	return false
}

// stdinGate asks for tool approval on the terminal. Anything but an explicit
// yes declines.
type stdinGate struct{}

var _ agent.ConfirmationGate = stdinGate{}

func (stdinGate) Confirm(ctx context.Context, toolNames []string) (bool, error) {
	fmt.Println(noticeStyle.Render(fmt.Sprintf("The assistant wants to run: %s", strings.Join(toolNames, ", "))))
	fmt.Print(promptStyle.Render("allow? [y/N] ") + " ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
