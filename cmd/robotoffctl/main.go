package main

import (
	"fmt"
	"log"
	"os"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/factories"
)

func main() {
	locator := factories.NewSharedServicesLocator(nil, nil, os.Stdin, os.Stdout, os.Stderr)

	if err := NewRootCmd(locator).Execute(); err != nil {
		log.Fatal(fmt.Errorf("error executing command: %w", err))
	}
}
