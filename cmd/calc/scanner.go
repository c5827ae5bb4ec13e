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
	"io"
	"net"
	"strings"

	"github.com/pkg/errors"
)

// Scanner is inspired on bufio.Scanner, which implements it. Batch mode
// evaluates one expression per scanned text.
type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

// UDPScanner is a Scanner that yields one datagram per Scan, so every
// datagram carries exactly one expression. Trailing line breaks, as sent
// by `nc -u`, are dropped.
type UDPScanner struct {
	buf   []byte
	text  string
	err   error
	sConn *net.UDPConn
}

// NewUDPScanner listens for expressions on the given UDP port, "0"
// picks a free one.
func NewUDPScanner(port string) (*UDPScanner, error) {
	// setup udp connection
	sAddr, err := net.ResolveUDPAddr("udp", ":"+port)
	if err != nil {
		return nil, errors.Wrap(err, "udp scanner")
	}

	sConn, err := net.ListenUDP("udp", sAddr)
	if err != nil {
		return nil, errors.Wrap(err, "udp scanner")
	}

	return &UDPScanner{
		buf:   make([]byte, 1024),
		sConn: sConn,
	}, nil
}

func (s *UDPScanner) Scan() bool {
	// read a single expression
	n, err := s.sConn.Read(s.buf)
	if err != nil {
		s.err = errors.Wrap(err, "udp scan")
		return false
	}

	s.text = strings.TrimRight(string(s.buf[0:n]), "\r\n")

	return true
}

func (s *UDPScanner) Text() string {
	return s.text
}

func (s *UDPScanner) Err() error {
	return s.err
}

// LocalAddr returns the address the scanner listens on.
func (s *UDPScanner) LocalAddr() net.Addr {
	return s.sConn.LocalAddr()
}

func (s *UDPScanner) Close() error {
	return s.sConn.Close()
}

func writeln(w io.Writer, bts []byte) error {
	n, err := w.Write(bts)
	if err != nil {
		return err
	}
	if n != len(bts) {
		return errors.New("not all bytes were written")
	}

	newLine := []byte("\n")
	n, err = w.Write(newLine)
	if err != nil {
		return err
	}
	if n != len(newLine) {
		return errors.New("not all bytes were written")
	}

	return nil
}
