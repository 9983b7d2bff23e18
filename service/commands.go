package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"quillpress/app/config"
	"quillpress/app/repositories"

	"github.com/sirupsen/logrus"
)

// HandleCommand handles database subcommands and returns an exit code.
func HandleCommand(cfg *config.Config, logger logrus.FieldLogger, args []string) int {
	if len(args) < 1 {
		printDbHelp()
		return 1
	}

	cmd := args[0]
	switch cmd {
	case "clean":
		clean(cfg)
		return 0
	case "init":
		initDb(cfg, logger)
		return 0
	case "backup":
		backup(cfg, logger)
		return 0
	case "restore":
		if len(args) < 2 {
			fmt.Println("Error: backup file path required for restore")
			return 1
		}
		return restore(cfg, logger, args[1])
	case "add-author":
		if len(args) < 3 {
			fmt.Println("Error: name and email required for add-author")
			return 1
		}
		return addAuthor(cfg, logger, args[1], args[2])
	case "list-authors":
		return listAuthors(cfg, logger)
	case "help":
		printDbHelp()
		return 0
	default:
		fmt.Printf("Unknown db command: %s\n\n", cmd)
		printDbHelp()
		return 1
	}
}

// printDbHelp prints help for database subcommands.
func printDbHelp() {
	helpText := `Usage: quillpress db

Commands:
  init                            Initialize a new empty database
  clean                           Clean the blog database
  backup                          Create a backup of the database
  restore [file]                  Restore database from backup
  add-author [name] [email]       Add an author posts can be attributed to
  list-authors                    List all authors
  help                            Display this help message
`
	fmt.Println(helpText)
}

// clean removes the database.
func clean(cfg *config.Config) {
	if !exists(cfg.DBPath) {
		fmt.Println("Database is already clean (does not exist)")
		return
	}

	if !confirm("Are you sure you want to clean the database? This cannot be undone.") {
		fmt.Println("Operation cancelled")
		return
	}

	if err := os.RemoveAll(cfg.DBPath); err != nil {
		fmt.Printf("Failed to clean database: %v\n", err)
		return
	}
	fmt.Println("Database cleaned successfully")
}

// initDb initializes a new empty database.
func initDb(cfg *config.Config, logger logrus.FieldLogger) {
	if exists(cfg.DBPath) {
		fmt.Println("Database already exists. Use 'clean' first if you want to reinitialize.")
		return
	}

	st, err := openStore(cfg.DBPath, false, logger)
	if err != nil {
		fmt.Printf("Failed to initialize database: %v\n", err)
		return
	}
	defer st.Close()

	fmt.Println("Database initialized successfully")
}

// backup creates a backup of the database.
func backup(cfg *config.Config, logger logrus.FieldLogger) {
	if !exists(cfg.DBPath) {
		fmt.Println("No database exists to backup")
		return
	}

	if err := os.MkdirAll(cfg.BackupDir, 0755); err != nil {
		fmt.Printf("Failed to create backup directory: %v\n", err)
		return
	}

	st, err := openStore(cfg.DBPath, false, logger)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return
	}
	defer st.Close()

	backupFile := filepath.Join(cfg.BackupDir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
	f, err := os.Create(backupFile)
	if err != nil {
		fmt.Printf("Failed to create backup file: %v\n", err)
		return
	}
	defer f.Close()

	if err := st.Backup(f); err != nil {
		fmt.Printf("Failed to backup database: %v\n", err)
		return
	}

	fmt.Printf("Database backed up successfully to %s\n", backupFile)
}

// restore restores the database from a backup.
func restore(cfg *config.Config, logger logrus.FieldLogger, backupFile string) int {
	fi, err := os.Stat(backupFile)
	if os.IsNotExist(err) {
		fmt.Printf("Backup file does not exist: %s\n", backupFile)
		return 1
	}
	if err != nil {
		fmt.Printf("Failed to stat backup file: %v\n", err)
		return 1
	}
	if fi.Size() == 0 {
		fmt.Printf("Backup file is empty: %s\n", backupFile)
		return 1
	}

	if exists(cfg.DBPath) {
		if !confirm("Existing database found. Do you want to replace it?") {
			fmt.Println("Operation cancelled")
			return 1
		}
		if err := os.RemoveAll(cfg.DBPath); err != nil {
			fmt.Printf("Failed to remove existing database: %v\n", err)
			return 1
		}
	}

	st, err := openStore(cfg.DBPath, false, logger)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer st.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		fmt.Printf("Failed to open backup file: %v\n", err)
		return 1
	}
	defer f.Close()

	err = func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic occurred during restore: %v", r)
			}
		}()
		return st.Load(f)
	}()
	if err != nil {
		fmt.Printf("Failed to restore database: %v\n", err)
		return 1
	}

	fmt.Println("Database restored successfully")
	return 0
}

// addAuthor stores a new author record.
func addAuthor(cfg *config.Config, logger logrus.FieldLogger, name, email string) int {
	st, err := openStore(cfg.DBPath, false, logger)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer st.Close()

	id, err := repositories.NewBadgerAuthorRepository(st).Create(name, email)
	if err != nil {
		fmt.Printf("Failed to add author: %v\n", err)
		return 1
	}
	fmt.Printf("Author %s added with id %s\n", name, id)
	return 0
}

// listAuthors prints every author.
func listAuthors(cfg *config.Config, logger logrus.FieldLogger) int {
	if !exists(cfg.DBPath) {
		fmt.Println("No database exists")
		return 1
	}

	st, err := openStore(cfg.DBPath, false, logger)
	if err != nil {
		fmt.Printf("Failed to open database: %v\n", err)
		return 1
	}
	defer st.Close()

	authors, err := repositories.NewBadgerAuthorRepository(st).List()
	if err != nil {
		fmt.Printf("Failed to list authors: %v\n", err)
		return 1
	}
	if len(authors) == 0 {
		fmt.Println("No authors found")
		return 0
	}
	for _, a := range authors {
		fmt.Printf("%s\t%s\t%s\n", a.ID, a.Name, a.Email)
	}
	return 0
}
