package main

import (
	"fmt"
	"os"
	"strings"

	"quillpress/app/config"
	"quillpress/app/logger"
	"quillpress/service"

	"github.com/joho/godotenv"
)

// CliVersion is reported by the version command.
const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches the command line. It is separate from main so tests
// can run it with a substituted exit.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	_ = godotenv.Load() // load .env if present
	cfg := config.Load()
	cfg.Version = CliVersion

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("quillpress version %s\n", CliVersion)
	case "serve":
		log := logger.New(cfg.AppName, cfg.Env, cfg.LogLevel)
		if err := service.RunAppServer(cfg, log); err != nil {
			log.WithError(err).Error("blog service failed")
			exit(1)
		}
	case "db":
		log := logger.New(cfg.AppName, cfg.Env, "warn")
		if code := service.HandleCommand(cfg, log, os.Args[2:]); code != 0 {
			exit(code)
		}
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: quillpress <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the blog service (HTTP_ADDR, DB_PATH, DB_IN_MEMORY, TIMEZONE).
  db <command>                   Manage the blog database:
       init                      Initialize a new empty database
       clean                     Clean the blog database
       backup                    Create a backup of the database
       restore [file]            Restore database from backup
       add-author [name] [email] Add an author
       list-authors              List all authors
`
	fmt.Println(helpText)
}
