// Copyright (c) 2016 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.


package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Merinom02/Lab348GroupProject/expr"
	"github.com/Merinom02/Lab348GroupProject/scenario"
	"github.com/pkg/errors"
)

var (
	configFile   = flag.String("config", "", "YAML file with the default settings")
	scenarioFile = flag.String("scenarios", "", "Run the checks of a YAML scenario file and exit")
	batch        = flag.Bool("batch", false, "Evaluate every line read from stdin instead of prompting once")
	listen       = flag.String("listen", "", "Read expressions from UDP datagrams on this port (implies -batch)")
	showPostfix  = flag.Bool("postfix", false, "Print the postfix form of every expression")
	multiDigit   = flag.Bool("multi-digit", false, "Read a run of digits as one number")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("calc: %v", err)
	}
	applyFlags(flag.CommandLine, cfg)

	if *scenarioFile != "" {
		ok, err := runScenarios(*scenarioFile, os.Stdout)
		if err != nil {
			log.Fatalf("calc: %v", err)
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	if !cfg.Batch {
		prompt(os.Stdin, os.Stdout, cfg)
		return
	}

	var s Scanner = bufio.NewScanner(os.Stdin)
	if cfg.Listen != "" {
		us, err := NewUDPScanner(cfg.Listen)
		if err != nil {
			log.Fatalf("calc: %v", err)
		}
		defer us.Close()
		log.Printf("calc: listening for expressions on %v", us.LocalAddr())
		s = us
	}
	if err := runBatch(s, os.Stdout, cfg); err != nil {
		log.Fatalf("calc: %v", err)
	}
}

// prompt asks for a single expression and prints its result. Evaluation
// errors are printed, they never change the exit status.
func prompt(in io.Reader, out io.Writer, cfg *Config) {
	fmt.Fprintln(out, "Enter a Mathematical Expression:")

	line := ""
	s := bufio.NewScanner(in)
	if s.Scan() {
		line = s.Text()
	}

	postfix, v, err := calculate(line, cfg)
	if cfg.ShowPostfix && postfix != nil {
		fmt.Fprintf(out, "Postfix: %v\n", postfix)
	}
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "Result: %s\n", expr.FormatResult(v))
}

// runBatch evaluates every non-empty text of s and writes one line per
// expression to out.
func runBatch(s Scanner, out io.Writer, cfg *Config) error {
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		postfix, v, err := calculate(line, cfg)
		var res string
		switch {
		case err != nil:
			res = fmt.Sprintf("%s error: %v", line, err)
		case cfg.ShowPostfix:
			res = fmt.Sprintf("%s = %s [%v]", line, expr.FormatResult(v), postfix)
		default:
			res = fmt.Sprintf("%s = %s", line, expr.FormatResult(v))
		}

		if err := writeln(out, []byte(res)); err != nil {
			return errors.Wrap(err, "batch output")
		}
	}
	return errors.Wrap(s.Err(), "batch input")
}

// calculate converts and evaluates line. The postfix form is returned
// whenever conversion succeeded, even if evaluation failed.
func calculate(line string, cfg *Config) (expr.Postfix, float64, error) {
	var opts []expr.ConverterOption
	if cfg.MultiDigit {
		opts = append(opts, expr.WithMultiDigit(true))
	}

	postfix, err := expr.ToPostfix(line, opts...)
	if err != nil {
		return nil, 0, err
	}
	v, err := expr.NewEvaluator(expr.DefaultTable).Evaluate(postfix)
	if err != nil {
		return postfix, 0, err
	}
	return postfix, v, nil
}

func runScenarios(path string, out io.Writer) (bool, error) {
	scns, err := scenario.ParseFile(path)
	if err != nil {
		return false, err
	}

	success := true
	for _, s := range scns {
		if !s.Report(out) {
			success = false
		}
	}
	return success, nil
}
