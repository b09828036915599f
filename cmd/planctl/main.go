package main

import (
	"os"

	"github.com/muzmmils/Skill-Learning-Buddy/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
