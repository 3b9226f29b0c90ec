package main

import (
	"fmt"

	"github.com/mlipski/siteql"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	schema, err := deps.DB.Schema(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteql.ErrorMessage(err))
		return err
	}

	answer, err := deps.Asker.Ask(deps.Ctx, c.Question, schema)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteql.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
