package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/moneypool/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine, the environment and flags still apply.
	_ = godotenv.Load()

	cmd.Completion().Complete("psplit")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging()

	if args := flag.Args(); len(args) > 0 && !cmd.IsRegistered(commander, args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
