// Command exactcover reads an exact-cover instance from stdin and prints
// its solutions.
//
// Protocol: the first line is the space-separated column names; every
// further line names the columns of one row. Each solution is printed as
// the original input lines of its selected rows, up to -limit solutions.
//
//	$ printf 'a b c\na c\nb\na\nb c\n' | exactcover
//	a c
//	b
//	a
//	b c
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/exactcover/dlx"
)

func main() {
	limit := flag.Int("limit", 1000, "maximum number of solutions to print")
	flag.Parse()

	sc := bufio.NewScanner(os.Stdin)

	// First line: the declared column set.
	if !sc.Scan() {
		log.Fatal("exactcover: missing column line")
	}
	columns := strings.Fields(sc.Text())

	// Remaining lines: one row each, kept verbatim for output.
	var lines []string
	var rows [][]string
	for sc.Scan() {
		lines = append(lines, sc.Text())
		rows = append(rows, strings.Fields(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("exactcover: reading stdin: %v", err)
	}

	inst, err := dlx.New(columns, rows)
	if err != nil {
		log.Fatalf("exactcover: %v", err)
	}

	printed := 0
	for sol := range inst.Solutions() {
		for _, ri := range sol {
			fmt.Println(lines[ri])
		}
		printed++
		if printed >= *limit {
			break
		}
	}
}
