package main

import "fmt"

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	content, err := deps.Extractor.Extract(deps.Ctx, c.File)
	if err != nil {
		printError(deps.Stderr, err)
		return err
	}

	fmt.Fprintln(deps.Stdout, content.String())
	return nil
}
