package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mlipski/siteql"
)

// Run executes the chat command: an interactive question loop over the
// scraped data with a transient transcript.
func (c *ChatCmd) Run(deps *Dependencies) error {
	schema, err := deps.DB.Schema(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteql.ErrorMessage(err))
		return err
	}

	session := siteql.NewChatSession()

	fmt.Fprintln(deps.Stdout, "Ask questions about your scraped data. /clear resets the transcript, /quit exits.")

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		switch {
		case question == "":
			continue
		case question == "/quit" || question == "/exit":
			return scanner.Err()
		case question == "/clear":
			session.Clear()
			fmt.Fprintln(deps.Stdout, "Transcript cleared.")
			continue
		case question == "/history":
			c.printHistory(deps, session)
			continue
		}

		answer, err := c.ask(deps, question, schema)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", siteql.ErrorMessage(err))
			continue
		}

		session.Append(question, answer)
		fmt.Fprintf(deps.Stdout, "%s\n\n", answer)
	}

	return scanner.Err()
}

// ask forwards one question to the agent with a progress spinner.
func (c *ChatCmd) ask(deps *Dependencies, question, schema string) (string, error) {
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(deps.Stderr))
	s.Suffix = " thinking..."
	s.Start()
	defer s.Stop()

	return deps.Asker.Ask(deps.Ctx, question, schema)
}

// printHistory prints the session transcript.
func (c *ChatCmd) printHistory(deps *Dependencies, session *siteql.ChatSession) {
	if session.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "Transcript is empty.")
		return
	}
	for _, ex := range session.Exchanges {
		fmt.Fprintf(deps.Stdout, "You: %s\nAI:  %s\n\n", ex.Question, ex.Answer)
	}
}
