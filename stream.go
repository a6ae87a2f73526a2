/*------------------------------------------------------------------------------
* stream.go : output stream functions
*
*          Copyright (C) 2008-2025 by T.TAKASU, feng xuebin, All rights reserved.
*
* notes  : stream path
*
*              ""  or "-"                 stdout
*              serial://port[:brate]      serial port (brate: bps)
*              tcpcli://addr:port         tcp client
*              file://path  or  path      file (created or truncated)
*
* history : 2009/01/16 1.0  new
*           2022/05/31 1.0  rewrite stream.c with golang by fxb
*           2025/03/02 1.1  output-only streams for displacement series
*-----------------------------------------------------------------------------*/
package oloadgo

import (
	"fmt"
	"io"
	"net"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	serial "github.com/tarm/goserial"
)

const (
	STR_NONE   = 0 /* stream type: none */
	STR_SERIAL = 1 /* stream type: serial */
	STR_FILE   = 2 /* stream type: file */
	STR_TCPCLI = 4 /* stream type: tcp client */
	STR_STDOUT = 9 /* stream type: stdout */

	TCPTIMEOUT = 10 * time.Second /* tcp connect timeout */
)

type Stream struct { /* output stream */
	Type int            /* stream type (STR_???) */
	Path string         /* stream path */
	w    io.WriteCloser /* device */
	nb   int64          /* bytes written */
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

/* decode stream path --------------------------------------------------------*/
func decodeStreamPath(path string) (int, string) {
	switch {
	case path == "" || path == "-":
		return STR_STDOUT, ""
	case strings.HasPrefix(path, "serial://"):
		return STR_SERIAL, path[9:]
	case strings.HasPrefix(path, "tcpcli://"):
		return STR_TCPCLI, path[9:]
	case strings.HasPrefix(path, "file://"):
		return STR_FILE, path[7:]
	}
	return STR_FILE, path
}

/* open serial ---------------------------------------------------------------*/
func openSerial(path string) (io.WriteCloser, error) {
	var br = []int{300, 600, 1200, 2400, 4800, 9600, 19200, 38400, 57600, 115200, 230400,
		460800, 921600}

	port, brate := path, 9600
	if index := strings.Index(path, ":"); index > 0 {
		port = path[:index]
		v, err := strconv.Atoi(strings.SplitN(path[index+1:], ":", 2)[0])
		if err != nil {
			return nil, fmt.Errorf("bitrate error (%s)", path[index+1:])
		}
		brate = v
	}
	if i := sort.SearchInts(br, brate); i >= len(br) || br[i] != brate {
		Tracet(1, "openserial: bitrate error path=%s\n", path)
		return nil, fmt.Errorf("bitrate error (%d)", brate)
	}
	if !strings.HasPrefix(port, "/") {
		port = "/dev/" + port
	}
	s, err := serial.OpenPort(&serial.Config{Name: port, Baud: brate})
	if err != nil {
		return nil, err
	}
	Tracet(3, "openserial: port=%s brate=%d\n", port, brate)
	return s, nil
}

/* open stream -----------------------------------------------------------------
* open output stream
* args   : char   *path     I   stream path (see notes above)
* return : stream, error
*-----------------------------------------------------------------------------*/
func OpenStream(path string) (*Stream, error) {
	var (
		stream = &Stream{Path: path}
		err    error
	)
	stream.Type, path = decodeStreamPath(path)
	Tracet(3, "openstream: type=%d path=%s\n", stream.Type, path)

	switch stream.Type {
	case STR_STDOUT:
		stream.w = nopCloser{os.Stdout}
	case STR_SERIAL:
		stream.w, err = openSerial(path)
	case STR_TCPCLI:
		stream.w, err = net.DialTimeout("tcp", path, TCPTIMEOUT)
	case STR_FILE:
		stream.w, err = os.Create(path)
	}
	if err != nil {
		return nil, fmt.Errorf("open stream %s: %w", stream.Path, err)
	}
	return stream, nil
}

func (stream *Stream) Write(p []byte) (int, error) {
	n, err := stream.w.Write(p)
	stream.nb += int64(n)
	return n, err
}

// Close closes the device. stdout is left open.
func (stream *Stream) Close() error {
	Tracet(3, "closestream: path=%s bytes=%d\n", stream.Path, stream.nb)
	return stream.w.Close()
}

// Bytes returns the number of bytes written.
func (stream *Stream) Bytes() int64 { return stream.nb }
