// Command vsqlddl regenerates the Oracle DDL for the shipped vSQL rule
// table: the CREATE TABLE statement and the procedure that repopulates it
// from the in-process RuleTable (§6.2, §9 "Serialisation", §11).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ha1tch/vsql/vsql"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vsqlddl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	output := fs.String("o", "", "Write DDL to file instead of stdout")
	outputL := fs.String("output", "", "Write DDL to file instead of stdout")
	force := fs.Bool("f", false, "Allow overwriting an existing output file")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	out := *output
	if out == "" {
		out = *outputL
	}

	builder := vsql.NewRuleBuilder(vsql.NewSlogLogger(nil))
	if err := vsql.RegisterCoreRules(builder); err != nil {
		fmt.Fprintf(stderr, "vsqlddl: %v\n", err)
		return 1
	}
	table := builder.Freeze()
	ddl := vsql.GenerateDDL(table)

	if out == "" {
		fmt.Fprint(stdout, ddl)
		return 0
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !*force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(out, flags, 0644)
	if err != nil {
		fmt.Fprintf(stderr, "vsqlddl: %v\n", err)
		return 1
	}
	defer f.Close()
	if _, err := io.WriteString(f, ddl); err != nil {
		fmt.Fprintf(stderr, "vsqlddl: %v\n", err)
		return 1
	}
	return 0
}
