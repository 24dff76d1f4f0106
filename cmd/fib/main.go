package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	radixnum "github.com/shabbyrobe/go-radixnum"
)

const usage = `Fibonacci printer

Reads n from stdin and prints the n-th Fibonacci number (F(0) == 0).

Usage: fib [-radix=<radix>] [-json] [-dump] < n`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var radix uint
	var asJSON, dump bool

	fs := flag.NewFlagSet("fib", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprintln(stderr, usage); fs.PrintDefaults() }
	fs.UintVar(&radix, "radix", radixnum.DefaultRadix, "Radix to print the result in")
	fs.BoolVar(&asJSON, "json", false, "Print the result as a JSON object")
	fs.BoolVar(&dump, "dump", false, "Dump the result's internals to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if radix < radixnum.MinRadix || radix > radixnum.MaxTextRadix {
		return fmt.Errorf("radix %d not in [%d, %d]", radix, radixnum.MinRadix, radixnum.MaxTextRadix)
	}

	var n int
	if _, err := fmt.Fscan(stdin, &n); err != nil {
		return fmt.Errorf("reading n: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("n must be >= 0, found %d", n)
	}

	result := fib(n, radix)
	if dump {
		spew.Fdump(stderr, result)
	}

	if asJSON {
		return json.NewEncoder(stdout).Encode(struct {
			N   int          `json:"n"`
			Fib radixnum.Nat `json:"fib"`
		}{n, result})
	}

	_, err := fmt.Fprintln(stdout, result)
	return err
}

func fib(n int, radix uint) radixnum.Nat {
	a, b := radixnum.NatFrom64(0, radix), radixnum.NatFrom64(1, radix)
	for i := 0; i < n; i++ {
		c := b
		b.AddAssign(a)
		a = c
	}
	return a
}
