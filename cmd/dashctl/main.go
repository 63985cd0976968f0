package main

import (
	"os"

	"ai_dashboard_server/cmd/dashctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
