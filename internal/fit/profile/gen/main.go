// Command fitprofilegen is the build-time profile compiler: it reads the
// type catalog and message catalog tabular schema files and emits the
// static profile_gen.go artifact the decoder links against.
//
// Typical invocation, wired via a go:generate directive in model.go:
//
//	go run ./internal/fit/profile/gen \
//	    -types internal/fit/profile/data/types.csv \
//	    -messages internal/fit/profile/data/messages.csv \
//	    -out internal/fit/profile/profile_gen.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vililahtevanoja/fit-parser/internal/fit/profile"
)

func main() {
	typesPath := flag.String("types", "internal/fit/profile/data/types.csv", "path to the type catalog CSV")
	messagesPath := flag.String("messages", "internal/fit/profile/data/messages.csv", "path to the message catalog CSV")
	outPath := flag.String("out", "internal/fit/profile/profile_gen.go", "output path for the generated Go source")
	flag.Parse()

	if err := run(*typesPath, *messagesPath, *outPath); err != nil {
		fmt.Fprintln(os.Stderr, "fitprofilegen:", err)
		os.Exit(1)
	}
}

func run(typesPath, messagesPath, outPath string) error {
	typesFile, err := os.Open(typesPath)
	if err != nil {
		return fmt.Errorf("open type catalog: %w", err)
	}
	defer typesFile.Close()

	enums, valueSets, err := profile.LoadTypes(typesFile)
	if err != nil {
		return fmt.Errorf("load type catalog: %w", err)
	}

	messagesFile, err := os.Open(messagesPath)
	if err != nil {
		return fmt.Errorf("open message catalog: %w", err)
	}
	defer messagesFile.Close()

	messages, err := profile.LoadMessages(messagesFile)
	if err != nil {
		return fmt.Errorf("load message catalog: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := profile.Emit(out, "profile", enums, valueSets, messages); err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	return nil
}
