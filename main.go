package main

import (
	"PowerManager/cmd"
	"PowerManager/internal/pkg/logger"
)

func main() {
	defer logger.Sync()

	cmd.Execute()
}
