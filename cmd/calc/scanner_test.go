package main

import (
	"bytes"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUDPScanner(t *testing.T) {
	s, err := NewUDPScanner("0")
	require.NoError(t, err)
	defer s.Close()

	port := s.LocalAddr().(*net.UDPAddr).Port
	conn, err := net.DialUDP("udp", nil, &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: port})
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("(1+2)*3\n"))
	require.NoError(t, err)

	require.True(t, s.Scan())
	assert.Equal(t, "(1+2)*3", s.Text())
	assert.NoError(t, s.Err())

	s.Close()
	assert.False(t, s.Scan())
	assert.Error(t, s.Err())
}

func TestWriteln(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeln(&buf, []byte("2^3 = 8")))
	assert.Equal(t, "2^3 = 8\n", buf.String())
}
