// Package agent implements the interactive AI assistant. It runs a chat
// session primed with the user's journal statistics and current dashboard,
// so the model answers questions about the user's own trading, not about
// markets in general.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

const systemPrompt = `You are the financial assistant built into a trading
journal and stock dashboard terminal application. Answer questions about the
user's trades, statistics and the dashboard data provided below. Be concise.
You are not a financial adviser; when asked for investment advice, explain
the data instead of recommending actions.`

// Assistant is one chat session with the model.
type Assistant struct {
	w       io.Writer
	r       *bufio.Reader
	Model   string
	Context string // markdown snapshot of journal stats and dashboard
	chat    *genai.Chat
}

// New creates an assistant writing to w and reading user input from r.
// contextMD is the data snapshot the session is primed with; it may be
// empty when the backend is unreachable.
func New(w io.Writer, r io.Reader, contextMD string) *Assistant {
	return &Assistant{
		w:       w,
		r:       bufio.NewReader(r),
		Model:   defaultModel,
		Context: contextMD,
	}
}

// Start opens the chat session.
func (a *Assistant) Start(ctx context.Context, client *genai.Client) error {
	instruction := systemPrompt
	if a.Context != "" {
		instruction = systemPrompt + "\n\n# Current data\n\n" + a.Context
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}
	chat, err := client.Chats.Create(ctx, a.Model, config, nil)
	if err != nil {
		return fmt.Errorf("cannot open chat session: %w", err)
	}
	a.chat = chat
	return nil
}

// Ask sends one message and returns the model's text.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	if a.chat == nil {
		return "", fmt.Errorf("assistant session is not started")
	}
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the model")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run drives the interactive REPL: initial prompts first, then stdin until
// "bye" or EOF.
func (a *Assistant) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Financial assistant ready. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
