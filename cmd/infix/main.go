package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/caot/infix"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		echo   bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.Parse()

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			eval(arg, echo)
		}
		return
	}

	in, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	if inname == "" {
		fmt.Println("Expression calculator")
		fmt.Println("Enter an expression (e.g., 2 + 3 * (4 - 1)) or 'quit' to exit.")
	}
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		line := scan.Text()
		if line == "quit" {
			return
		}
		eval(line, echo)
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
}

// eval parses and evaluates one expression, printing the result or the
// error. A bad expression never ends the process.
func eval(src string, echo bool) {
	a, err := infix.ParseString(src)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if echo {
		fmt.Printf("%v : ", a)
	}
	r, err := a.Eval()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Result: %g\n", r)
}

func infile(inname string) (io.Reader, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, nil
	}
	return os.Open(inname)
}
