package main

import (
	"fmt"
	"os"

	"github.com/preston-bernstein/football-team-service/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
