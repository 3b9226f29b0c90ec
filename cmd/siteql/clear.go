package main

import (
	"fmt"

	"github.com/mlipski/siteql"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintln(deps.Stderr, "error: use --force to confirm deletion")
		return siteql.Errorf(siteql.EINVALID, "use --force to confirm deletion")
	}

	// Exactly one of the prefix argument and --all selects what to delete.
	if c.All == (c.Prefix != "") {
		fmt.Fprintln(deps.Stderr, "error: provide a URL prefix or --all")
		return siteql.Errorf(siteql.EINVALID, "provide a URL prefix or --all")
	}

	if c.All {
		deleted, err := deps.Records.DeleteAllRecords(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", siteql.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted %d records\n", deleted)
		return nil
	}

	deleted, err := deps.Records.DeleteRecordsByURLPrefix(deps.Ctx, c.Prefix)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteql.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d records with URL prefix %q\n", deleted, c.Prefix)
	return nil
}
