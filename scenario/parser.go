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


package scenario

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/Merinom02/Lab348GroupProject/expr"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// fileYaml is used to unmarshal the scenarios declared in a yaml file.
type fileYaml struct {
	Scenarios []*scenarioYaml
}

// scenarioYaml captures the information of a scenario.
type scenarioYaml struct {
	Name       string
	Desc       string
	MultiDigit bool `yaml:"multi-digit"`

	Checks []string
	Runs   [][]string
}

// ParseFile reads and parses the scenario file at path.
func ParseFile(path string) ([]*Scenario, error) {
	bts, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "scenario file")
	}
	scns, err := Parse(bts)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario file %s", path)
	}
	return scns, nil
}

// Parse returns a Scenario for every run of every scenario in bts.
func Parse(bts []byte) (scns []*Scenario, err error) {
	defer func() {
		if r := recover(); r != nil {
			scns = nil
			err = errors.New(fmt.Sprint(r))
		}
	}()

	data := &fileYaml{}
	err = yaml.Unmarshal(bts, data)
	if err != nil {
		panic("failed to unmarshal scenario yaml: " + err.Error())
	}

	return extractScenarios(data), nil
}

// extractScenarios returns a scenario for every element in the runs list.
func extractScenarios(data *fileYaml) []*Scenario {
	var result []*Scenario
	for _, scenarioData := range data.Scenarios {
		if len(scenarioData.Runs) == 0 {
			result = append(result, extractScenario(scenarioData, 0))
			continue
		}
		for _, vari := range scenarioData.Runs[0] {
			if len(vari) < 2 || vari[0] != '<' || vari[len(vari)-1] != '>' {
				panic(fmt.Sprintf("variable '%s' not of the form <var>", vari))
			}
		}
		// We start at i=1 because the first entry of the runs declares the
		// variables names. e.g. [<A>, <B>].
		for i := 1; i < len(scenarioData.Runs); i++ {
			result = append(result, extractScenario(scenarioData, i))
		}
	}

	return result
}

// extractScenario returns a scenario given the index of a specific run.
func extractScenario(data *scenarioYaml, runIx int) *Scenario {
	varsData := []string(nil)
	runData := []string(nil)
	if runIx != 0 {
		varsData = data.Runs[0]
		runData = data.Runs[runIx]
	}
	defer wrapPanicf("failed to parse scenario '%s'", data.Name)
	defer wrapPanicf("in run %d, [%v] = [%v]", runIx, strings.Join(varsData, ", "), strings.Join(runData, ", "))

	if len(varsData) != len(runData) {
		panic(fmt.Sprintf("var count of run %v should match var count of %v", runData, varsData))
	}

	checkStrs := make([]string, len(data.Checks))
	for i := range data.Checks {
		checkStrs[i] = replace(data.Checks[i], varsData, runData)
	}

	// don't find and replace on name
	return &Scenario{
		Name:       data.Name,
		Desc:       replace(data.Desc, varsData, runData),
		MultiDigit: data.MultiDigit,
		Checks:     parseChecks(checkStrs),
	}
}

func parseChecks(strs []string) []*Check {
	var checks []*Check
	for _, str := range strs {
		checks = append(checks, parseCheck(str))
	}
	return checks
}

// parseCheck parses strings like "(1+2)*3 is 9". The assertion is
// optional, everything in front of it is the expression.
func parseCheck(str string) *Check {
	defer wrapPanicf("in parse check '%s'", str)

	fields := strings.Fields(str)
	if len(fields) == 0 {
		panic("empty check")
	}

	var assertion *Assertion
	for i := len(fields) - 1; i > 0; i-- {
		switch AssertionType(fields[i]) {
		case AssertionTypeIs, AssertionTypeIn, AssertionTypeFails:
			arg := strings.Join(fields[i+1:], "")
			assertion = parseAssertion(AssertionType(fields[i]), arg)
			fields = fields[:i]
		}
		if assertion != nil {
			break
		}
	}

	return &Check{
		Expression: strings.Join(fields, " "),
		Assertion:  assertion,
	}
}

func parseAssertion(typ AssertionType, arg string) *Assertion {
	defer wrapPanicf("in parse assertion '%s %s'", typ, arg)

	if arg == "" {
		panic("missing argument")
	}

	switch typ {
	case AssertionTypeIs:
		return &Assertion{
			Type: typ,
			V1:   parseValue(arg),
		}

	case AssertionTypeIn:
		v1, v2 := parseRange(arg)
		return &Assertion{
			Type: typ,
			V1:   v1,
			V2:   v2,
		}

	case AssertionTypeFails:
		kind, err := expr.ParseErrorKind(arg)
		if err != nil {
			panic(err.Error())
		}
		return &Assertion{
			Type: typ,
			Kind: kind,
		}
	}

	panic("not valid assertion type")
}

func parseRange(rng string) (v1, v2 float64) {
	defer wrapPanicf("in parse range '%s'", rng)

	if rng[0] != '(' || rng[len(rng)-1] != ')' {
		panic("should be enclosed by parenthesis")
	}
	split := strings.Split(rng[1:len(rng)-1], ",")
	if len(split) != 2 {
		panic("should be split by a comma")
	}

	v1 = parseValue(split[0])
	v2 = parseValue(split[1])
	if v1 > v2 {
		panic(fmt.Sprintf("lower bound %v is greater than upper bound %v", v1, v2))
	}

	return v1, v2
}

func parseValue(str string) float64 {
	defer wrapPanicf("in parse value '%s'", str)

	// First check if the input is an expression, this covers plain
	// integers as well.
	v, err := expr.Eval(str, expr.WithMultiDigit(true))
	if err == nil {
		return v
	}

	// Then fall back to literals the calculator can't express, like
	// negative or fractional numbers.
	v, err = strconv.ParseFloat(str, 64)
	if err == nil {
		return v
	}

	panic("value is not a number or expression")
}

// replace finds occurrences of varsData and replaces them by the respective
// element in the runData.
func replace(str string, varsData []string, runData []string) string {
	for i := range varsData {
		str = strings.Replace(str, varsData[i], runData[i], -1)
	}
	return str
}

// wrapPanicf recovers from a panic and then starts to panic with a message
// that adds to the message of the previous panic. This function should always
// be defered because of the recover and is commonly at the start of a
// function.
func wrapPanicf(format string, args ...interface{}) {
	if r := recover(); r != nil {
		msg := fmt.Sprintf(format, args...)
		panic(fmt.Sprintf("%s:\n- %v", msg, r))
	}
}
