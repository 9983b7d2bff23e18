package service

import (
	"fmt"
	"os"
	"strings"

	"quillpress/app/logger"
	"quillpress/app/store"

	"github.com/sirupsen/logrus"
)

// openStore connects the document store at path. Badger's own logging goes
// through log.
func openStore(path string, inMemory bool, log logrus.FieldLogger) (*store.Store, error) {
	return store.Open(store.Options{
		Path:     path,
		InMemory: inMemory,
		Logger:   logger.Badger(log),
	})
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// confirm asks a yes/no question on stdout and reads the answer from stdin.
func confirm(question string) bool {
	fmt.Print(question + " [y/N] ")
	var response string
	fmt.Scanln(&response)
	response = strings.TrimSpace(response)
	return response == "y" || response == "Y"
}
