// Package agent implements the multi-turn conversation engine: it owns
// conversation history, assembles provider requests, drives tool execution
// behind a user-confirmation gate, and normalizes the final answer.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zenbrowse/browsebot/pkg/browser"
	"github.com/zenbrowse/browsebot/pkg/config"
	"github.com/zenbrowse/browsebot/pkg/llm"
	"github.com/zenbrowse/browsebot/pkg/logging"
	"github.com/zenbrowse/browsebot/pkg/tools"
	"github.com/zenbrowse/browsebot/pkg/types"
)

// Answer sentinels returned instead of surfacing an error to the caller.
const (
	noResponseAnswer   = "The model did not return a valid response."
	toolFallbackAnswer = "I used my tools to complete your request."
)

// Engine is the conversation hub for one session. It is not safe for
// concurrent sends; callers must keep at most one SendMessage in flight,
// the way a chat UI disables its send control while a reply is pending.
type Engine struct {
	settings  *config.Settings
	registry  *tools.Registry
	bridge    browser.PageBridge
	gate      ConfirmationGate
	logger    *logging.Logger
	providers map[string]llm.Provider

	history []types.Turn
}

// Option configures an Engine.
type Option func(*Engine)

// WithProvider registers a provider adapter under a name.
func WithProvider(name string, p llm.Provider) Option {
	return func(e *Engine) {
		e.providers[name] = p
	}
}

// WithGate sets the confirmation gate used before tool execution.
func WithGate(gate ConfirmationGate) Option {
	return func(e *Engine) {
		e.gate = gate
	}
}

// WithLogger sets the component logger.
func WithLogger(logger *logging.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine with an empty history.
func NewEngine(settings *config.Settings, registry *tools.Registry, bridge browser.PageBridge, opts ...Option) *Engine {
	e := &Engine{
		settings:  settings,
		registry:  registry,
		bridge:    bridge,
		gate:      AutoApprove{},
		providers: make(map[string]llm.Provider),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger, _ = logging.NewLogger("engine")
	}
	return e
}

// Provider returns the active provider adapter.
func (e *Engine) Provider() (llm.Provider, error) {
	name := e.settings.Provider()
	p, ok := e.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q", name)
	}
	return p, nil
}

// ProviderNames lists the registered provider names.
func (e *Engine) ProviderNames() []string {
	names := make([]string, 0, len(e.providers))
	for name := range e.providers {
		names = append(names, name)
	}
	return names
}

// SetProvider switches the active provider and resets the session: history
// from one provider is not replayed against another.
func (e *Engine) SetProvider(name string) error {
	if _, ok := e.providers[name]; !ok {
		return fmt.Errorf("unknown provider %q", name)
	}
	if err := e.settings.SetProvider(name); err != nil {
		return err
	}
	e.ClearData()
	e.logger.Infof("switched provider to %s", name)
	return nil
}

// History returns a copy of the conversation history.
func (e *Engine) History() []types.Turn {
	out := make([]types.Turn, len(e.history))
	copy(out, e.history)
	return out
}

// LastTurn returns the most recently committed turn, or nil for an empty
// session.
func (e *Engine) LastTurn() *types.Turn {
	if len(e.history) == 0 {
		return nil
	}
	turn := e.history[len(e.history)-1]
	return &turn
}

// ClearData drops the conversation history.
func (e *Engine) ClearData() {
	e.history = nil
}

// SendMessage runs one conversational turn: recompute the system prompt,
// commit the user turn, call the provider, execute any requested tools, and
// normalize the answer. Only transport and API errors are returned; every
// other failure degrades to a sentinel answer. On any outcome with no usable
// answer, history rolls back to its pre-call state.
func (e *Engine) SendMessage(ctx context.Context, prompt string, pageCtx *types.PageContext) (*types.Answer, error) {
	provider, err := e.Provider()
	if err != nil {
		return nil, err
	}

	system := e.buildSystemInstruction(ctx)
	systemPart := types.TextPart(system)

	godMode := e.settings.GodMode() && provider.SupportsTools()
	citations := e.settings.CitationsEnabled()

	snapshot := len(e.history)
	fullPrompt := pageCtx.Tag() + " " + prompt
	e.history = append(e.history, types.NewUserTurn(fullPrompt))

	envelope := &llm.RequestEnvelope{
		Contents:          e.history,
		SystemInstruction: &systemPart,
		JSONResponse:      citations,
	}
	if godMode {
		envelope.Tools = e.registry.Declarations()
	}

	response, err := provider.SendMessage(ctx, envelope)
	if err != nil {
		e.history = e.history[:snapshot]
		return nil, err
	}
	if response == nil || response.Empty() {
		e.history = e.history[:snapshot]
		e.logger.Debugf("provider returned no usable content")
		return &types.Answer{Text: noResponseAnswer}, nil
	}
	response.Role = types.RoleModel
	e.history = append(e.history, *response)

	if godMode {
		if direct, handled := e.executeToolCalls(ctx, response, 0); handled {
			return direct, nil
		}
	}

	text := response.FirstText()
	if citations {
		answer := parseAnswerText(text, true)
		if answer.Text == "" {
			e.history = e.history[:snapshot]
		}
		return answer, nil
	}
	if text == "" {
		e.history = e.history[:snapshot]
		return &types.Answer{Text: toolFallbackAnswer}, nil
	}
	return &types.Answer{Text: text}, nil
}

// executeToolCalls runs the tool calls requested by a model response and
// returns the joined tool output as a direct answer: tool results are shown
// to the user as-is, with no follow-up model round. This bounds model calls
// to one per user message regardless of tool-call count. Returns handled =
// false when there is nothing to execute (no calls, or the depth budget is
// spent), in which case the model's own text is surfaced instead.
func (e *Engine) executeToolCalls(ctx context.Context, response *types.Turn, depth int) (*types.Answer, bool) {
	calls := response.FunctionCalls()
	if len(calls) == 0 {
		return nil, false
	}
	if depth >= e.settings.MaxToolCalls() {
		e.logger.Debugf("tool depth limit reached, leaving %d call(s) unexecuted", len(calls))
		return nil, false
	}

	names := make([]string, len(calls))
	for i, call := range calls {
		names[i] = call.Name
	}
	e.logger.Debugf("model requested tool call(s) at depth %d: %s", depth, strings.Join(names, ", "))

	confirmed := true
	if e.settings.ConfirmToolCalls() {
		ok, err := e.gate.Confirm(ctx, names)
		if err != nil {
			e.logger.Warnf("confirmation gate failed, treating as declined: %v", err)
			ok = false
		}
		confirmed = ok
	}

	responses := make([]types.FunctionResponse, 0, len(calls))
	if confirmed {
		// Sequential on purpose: the model may assume its calls run in order.
		for _, call := range calls {
			result := e.registry.Execute(ctx, call.Name, call.Args)
			responses = append(responses, types.FunctionResponse{Name: call.Name, Response: result})
		}
	} else {
		e.logger.Infof("tool execution declined by user")
		for _, name := range names {
			responses = append(responses, types.FunctionResponse{
				Name:     name,
				Response: map[string]any{"error": fmt.Sprintf("Tool %q execution cancelled by user.", name)},
			})
		}
	}

	e.history = append(e.history, types.NewToolTurn(responses...))

	lines := make([]string, 0, len(responses))
	for _, r := range responses {
		encoded, err := json.Marshal(r.Response)
		if err != nil {
			lines = append(lines, fmt.Sprint(r.Response))
			continue
		}
		lines = append(lines, string(encoded))
	}
	return &types.Answer{Text: strings.Join(lines, "\n")}, true
}
