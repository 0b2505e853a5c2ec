package main

import (
	"fmt"
	"os"
	"path/filepath"

	fit "github.com/vililahtevanoja/fit-parser"
	"github.com/vililahtevanoja/fit-parser/utils"
	"github.com/spf13/cobra"
)

var dumpRaw bool

var dumpCmd = &cobra.Command{
	Use:               "dump [fit-file]",
	Short:             "Print a FIT file's header followed by a per-record summary",
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

		decode := fit.Decode
		if dumpRaw {
			decode = fit.DecodeRaw
		}

		hdr, it, err := decode(buf)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", filename, err)
		}

		fmt.Printf("header: protocol=%d profile=%d data_size=%d\n", hdr.ProtocolVersion, hdr.ProfileVersion, hdr.DataSize)
		i := 0
		for it.Next() {
			printRecord(i, it.Record())
			i++
		}
		if err := it.Err(); err != nil {
			fmt.Printf("decode halted: %v\n", err)
			return err
		}
		fmt.Printf("file_crc_valid: %t\n", it.FileCRCValid())
		return nil
	},
}

func printRecord(i int, rec fit.DecodedRecord) {
	switch rec.Kind {
	case fit.RecordDefinition:
		fmt.Printf("[%d] definition local=%d global_mesg=%d fields=%d dev_fields=%d\n",
			i, rec.LocalMessageType, rec.Definition.GlobalMessageNumber,
			len(rec.Definition.Fields), len(rec.Definition.DeveloperFields))
	case fit.RecordData, fit.RecordCompressedTimestampData:
		name := rec.MessageName
		if name == "" {
			name = fmt.Sprintf("mesg#%d", rec.GlobalMessageNumber)
		}
		fmt.Printf("[%d] %s\n", i, name)
		if rec.AbsoluteTimestamp != nil {
			fmt.Printf("      timestamp: %d\n", *rec.AbsoluteTimestamp)
		}
		for _, v := range rec.Values {
			printValue(v)
		}
		for _, v := range rec.DeveloperValues {
			printDeveloperValue(v)
		}
	}
}

func printValue(v fit.ResolvedValue) {
	name := "?"
	if v.FieldName != nil {
		name = *v.FieldName
	}
	fmt.Printf("      %s (#%d) = %s", name, v.DefinitionNumber, formatValue(v))
	if v.EnumName != "" {
		fmt.Printf(" (%s)", v.EnumName)
	}
	if v.Units != "" {
		fmt.Printf(" %s", v.Units)
	}
	if v.IsInvalid {
		fmt.Print(" [invalid]")
	}
	fmt.Println()
}

func printDeveloperValue(v fit.DeveloperValue) {
	name := v.Name
	if name == "" {
		name = fmt.Sprintf("dev#%d.%d", v.DeveloperDataIndex, v.FieldNumber)
	}
	if v.Resolved != nil {
		fmt.Printf("      %s = %s\n", name, formatValue(*v.Resolved))
		return
	}
	fmt.Printf("      %s = %v (raw)\n", name, v.RawBytes)
}

func formatValue(v fit.ResolvedValue) string {
	switch v.Kind {
	case fit.KindInt:
		return fmt.Sprintf("%d", v.Int)
	case fit.KindUint:
		return fmt.Sprintf("%d", v.Uint)
	case fit.KindFloat:
		return fmt.Sprintf("%g", v.Float)
	case fit.KindString:
		return v.Str
	case fit.KindBytes:
		return fmt.Sprintf("%v", v.Bytes)
	case fit.KindArray:
		return fmt.Sprintf("%v", v.Array)
	default:
		return "?"
	}
}

func init() {
	dumpCmd.Flags().BoolVar(&dumpRaw, "raw", false, "skip profile resolution and print raw typed values")
	rootCmd.AddCommand(dumpCmd)
}
