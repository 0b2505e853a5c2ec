package main

import (
	"fmt"
	"os"
	"path/filepath"

	fit "github.com/vililahtevanoja/fit-parser"
	"github.com/vililahtevanoja/fit-parser/utils"
	"github.com/spf13/cobra"
)

var headerCmd = &cobra.Command{
	Use:               "header [fit-file]",
	Short:             "Print a FIT file's header",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".fit"}, false),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		if _, err := os.Stat(filename); os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", filename)
		}
		if ext := filepath.Ext(filename); ext != ".fit" {
			fmt.Printf("Warning: File extension '%s' is not '.fit', but proceeding anyway...\n", ext)
		}

		buf, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}

		hdr, err := fit.ParseHeader(buf)
		if err != nil {
			return fmt.Errorf("parsing header: %w", err)
		}

		fmt.Printf("header_size:      %d\n", hdr.HeaderSize)
		fmt.Printf("protocol_version: %d\n", hdr.ProtocolVersion)
		fmt.Printf("profile_version:  %d\n", hdr.ProfileVersion)
		fmt.Printf("data_size:        %d\n", hdr.DataSize)
		fmt.Printf("data_type:        %s\n", hdr.DataType)
		if hdr.HeaderCRC != nil {
			fmt.Printf("header_crc:       0x%04X\n", *hdr.HeaderCRC)
		} else {
			fmt.Printf("header_crc:       (not present)\n")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(headerCmd)
}
