package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	file := flag.String("f", "", "YAML script to run, reads console commands from stdin if empty")
	output := flag.String("o", string(outputText), "format of the final matrix (text or yaml)")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("glmatrix: ")

	var c *console
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatal(err)
		}
		s, err := loadScript(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		c = s.newConsole()
		if err := s.run(c, os.Stdout); err != nil {
			log.Fatal(err)
		}
	} else {
		c = newConsole(defaultMaxHistory)
		if err := runInteractive(c, os.Stdin, os.Stdout, os.Stderr); err != nil {
			log.Fatal(err)
		}
	}

	if err := writeMatrix(os.Stdout, c.Matrix(), outputFormat(*output)); err != nil {
		log.Fatal(err)
	}
}

// runInteractive runs console lines until r is exhausted. Command errors are
// reported to errw and do not stop the loop.
func runInteractive(c *console, r io.Reader, w, errw io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		res, err := c.Run(scanner.Text())
		if err != nil {
			fmt.Fprintf(errw, "error: %v\n", err)
			continue
		}
		if res != "" {
			fmt.Fprintln(w, res)
		}
	}
	return scanner.Err()
}
