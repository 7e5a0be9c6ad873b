package main

import (
	"log"
	"os"

	"fundtrack/cmd"
)

func main() {
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	deps.Logger.Infow("starting api", "commit", os.Getenv("commit_hash"), "port", deps.Secrets.Port)
	err = deps.ApiHandler.StartApi(deps.Secrets.Port)
	if err != nil {
		deps.Logger.Errorw("api stopped", "error", err)
	}
}
