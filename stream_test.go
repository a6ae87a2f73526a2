/*------------------------------------------------------------------------------
* oloadgo unit test driver : output streams
*-----------------------------------------------------------------------------*/
package oloadgo_test

import (
	"io"
	"net"
	"oloadgo"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* openstream(): file */
func Test_streamfile(t *testing.T) {
	assert := assert.New(t)
	file := filepath.Join(t.TempDir(), "disp.txt")

	for _, path := range []string{file, "file://" + file} {
		stream, err := oloadgo.OpenStream(path)
		require.NoError(t, err)
		assert.Equal(oloadgo.STR_FILE, stream.Type)
		n, err := stream.Write([]byte("0.1 0.2 0.3\n"))
		assert.NoError(err)
		assert.Equal(12, n)
		assert.Equal(int64(12), stream.Bytes())
		assert.NoError(stream.Close())

		buff, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Equal("0.1 0.2 0.3\n", string(buff))
	}
	_, err := oloadgo.OpenStream(filepath.Join(t.TempDir(), "no", "dir", "disp.txt"))
	assert.Error(err)
}

/* openstream(): stdout, serial path errors */
func Test_streamtype(t *testing.T) {
	assert := assert.New(t)
	stream, err := oloadgo.OpenStream("")
	require.NoError(t, err)
	assert.Equal(oloadgo.STR_STDOUT, stream.Type)
	assert.NoError(stream.Close())

	stream, err = oloadgo.OpenStream("-")
	require.NoError(t, err)
	assert.Equal(oloadgo.STR_STDOUT, stream.Type)

	_, err = oloadgo.OpenStream("serial://ttyUSB9:1234")
	assert.Error(err)
	_, err = oloadgo.OpenStream("serial://ttyUSB9:fast")
	assert.Error(err)
}

/* openstream(): tcp client */
func Test_streamtcp(t *testing.T) {
	assert := assert.New(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	recv := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			recv <- ""
			return
		}
		defer conn.Close()
		buff, _ := io.ReadAll(conn)
		recv <- string(buff)
	}()
	stream, err := oloadgo.OpenStream("tcpcli://" + ln.Addr().String())
	require.NoError(t, err)
	assert.Equal(oloadgo.STR_TCPCLI, stream.Type)
	_, err = stream.Write([]byte("      0.003513     -0.001893     -0.001513\n"))
	assert.NoError(err)
	assert.NoError(stream.Close())
	assert.Equal("      0.003513     -0.001893     -0.001513\n", <-recv)
}
