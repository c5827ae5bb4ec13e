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
	"flag"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config holds the settings of the calculator. It can be read from a
// yaml file, command line flags take precedence over the file.
type Config struct {
	MultiDigit  bool   `yaml:"multi-digit"`
	ShowPostfix bool   `yaml:"show-postfix"`
	Batch       bool   `yaml:"batch"`
	Listen      string `yaml:"listen"`
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	bts, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	err = yaml.UnmarshalStrict(bts, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags that were set explicitly on
// the command line.
func applyFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "multi-digit":
			cfg.MultiDigit = *multiDigit
		case "postfix":
			cfg.ShowPostfix = *showPostfix
		case "batch":
			cfg.Batch = *batch
		case "listen":
			cfg.Listen = *listen
		}
	})
	if cfg.Listen != "" {
		cfg.Batch = true
	}
}
