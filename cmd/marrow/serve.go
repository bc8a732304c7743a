package main

import (
	marrowhttp "github.com/fwojciec/marrow/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := marrowhttp.NewServer(deps.Extractor, deps.Logger)
	return srv.ListenAndServe(c.Addr)
}
