package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/safecalc"
)

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func evalLine(w, ew io.Writer, line string) bool {
	v, err := safecalc.Eval(line)
	if err != nil {
		fmt.Fprintf(ew, "error: %v\n", err)
		return false
	}
	fmt.Fprintln(w, format(v))
	return true
}

// loop evaluates each non-blank line of r. With prompt set it behaves as a
// REPL. It returns the number of lines that failed.
func loop(r io.Reader, w, ew io.Writer, prompt bool) (int, error) {
	failed := 0
	scanner := bufio.NewScanner(r)
	for {
		if prompt {
			fmt.Fprint(w, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !evalLine(w, ew, line) {
			failed++
		}
	}
	if prompt {
		fmt.Fprintln(w)
	}
	return failed, scanner.Err()
}

func run(args []string, r io.Reader, w, ew io.Writer, tty bool) int {
	if len(args) > 0 {
		if !evalLine(w, ew, strings.Join(args, " ")) {
			return 1
		}
		return 0
	}

	failed, err := loop(r, w, ew, tty)
	if err != nil {
		log.Fatal(err)
	}
	if failed > 0 && !tty {
		return 1
	}
	return 0
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [expression...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	fd := os.Stdin.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	os.Exit(run(flag.Args(), os.Stdin, os.Stdout, os.Stderr, tty))
}
