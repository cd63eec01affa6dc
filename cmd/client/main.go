package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authgate/internal/client/api"
	"github.com/dmitrijs2005/authgate/internal/client/cli"
)

func main() {

	server := flag.String("server", "http://localhost:8080", "AuthGate server base URL")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		fmt.Fprintln(os.Stderr, "usage: client [-server URL] <register|login|whoami|ping>")
		os.Exit(2)
	}

	app := cli.NewApp(api.NewClient(*server), os.Stdin, os.Stdout)

	if err := app.Run(context.Background(), command); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
