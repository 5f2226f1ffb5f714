package main

import (
	"os"

	"github.com/davidschrooten/open-academic-records/cmd"
	"github.com/davidschrooten/open-academic-records/internal/logger"
)

func main() {
	err := cmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
