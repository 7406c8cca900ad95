// Command purpleburst renders the purple burst background and saves it to
// public/lovable-uploads/purple_burst.png under the working directory.
package main

import (
	"log/slog"
	"os"

	"github.com/gogpu/burst"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	burst.SetLogger(logger)

	if err := run(burst.OutputPath); err != nil {
		logger.Error("failed to generate image", "err", err)
		os.Exit(1)
	}
}

func run(path string) error {
	return burst.New().Generate(path)
}
