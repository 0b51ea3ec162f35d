package main

import (
	"context"
	"os"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
