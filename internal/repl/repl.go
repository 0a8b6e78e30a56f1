// Package repl runs the chatbot as a plain line-in/line-out session on
// a reader/writer pair, for non-TTY use and scripting.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/gaonkarsahil14/CODTECH/internal/bot"
	"github.com/gaonkarsahil14/CODTECH/internal/knowledge"
)

// Run reads lines from in until the exit command, EOF, or ctx
// cancellation, writing prompts and replies to out. Every completed turn
// is appended to the chat log, including the final exit turn.
func Run(ctx context.Context, h *bot.Handler, store *knowledge.Store, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Simple NLP Chatbot (type 'help' for commands, 'exit' to quit)")
	fmt.Fprintln(out)

	store.LogSessionStart()

	type line struct {
		text string
		ok   bool
	}
	lines := make(chan line)
	scanner := bufio.NewScanner(in)
	go func() {
		for scanner.Scan() {
			select {
			case lines <- line{text: scanner.Text(), ok: true}:
			case <-ctx.Done():
				return
			}
		}
		select {
		case lines <- line{}:
		case <-ctx.Done():
		}
	}()

	for {
		fmt.Fprint(out, "You: ")

		var l line
		select {
		case <-ctx.Done():
			// Interrupt: close out gracefully, nothing to persist.
			fmt.Fprintln(out, "\nExiting. Goodbye!")
			return nil
		case l = <-lines:
		}
		if !l.ok {
			fmt.Fprintln(out, "\nExiting. Goodbye!")
			return scanner.Err()
		}

		reply := h.Handle(l.text)
		if reply.Exit {
			fmt.Fprintln(out, "Bot: "+bot.GoodbyeText)
			store.AppendLog(l.text, bot.GoodbyeText)
			return nil
		}

		fmt.Fprintln(out, "Bot: "+reply.Text)
		store.AppendLog(l.text, reply.Text)
	}
}
