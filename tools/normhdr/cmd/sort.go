package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheaders/header"
)

var sortCmd = &cobra.Command{
	Use:   "sort [file]",
	Short: "Canonicalize and sort a header block",
	Long: `Reads "Name: value" lines from the given file (or stdin), rewrites
each field-name to its canonical capitalization, and sorts the block in the
order RFC 2616 suggests: general headers first, then request, response, and
entity headers, with unknown headers last.`,
	Args: cobra.MaximumNArgs(1),
	Run:  RunSort,
}

var strict bool

func init() {
	sortCmd.Flags().BoolVar(&strict, "strict", false, "fail on unknown field-names")
	rootCmd.AddCommand(sortCmd)
}

func RunSort(cmd *cobra.Command, args []string) {
	in := io.Reader(os.Stdin)
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			panic(err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	fields, err := readFields(in)
	if err != nil {
		panic(err)
	}

	reg := header.MustNewRegistry()
	if err := reg.Normalize(fields, strict); err != nil {
		panic(err)
	}

	_, err = fields.WriteTo(os.Stdout)
	if err != nil {
		panic(err)
	}
}

func readFields(in io.Reader) (*header.Fields, error) {
	fields := &header.Fields{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %q is not a header field", line)
		}
		fields.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return fields, scanner.Err()
}
