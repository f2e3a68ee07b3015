// Package ircclient is an in-process test harness: a bare TCP client that
// dials a running server, writes raw lines, and parses what comes back. It
// carries no subprocess-linking or rehash/link machinery since tests here
// start the server directly in-process.
package ircclient

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/horgh/irc"
)

// Client is a single IRC client connection used from tests.
type Client struct {
	conn net.Conn
	rw   *bufio.ReadWriter

	readTimeout time.Duration
}

// Dial connects to addr (host:port).
func Dial(addr string) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("dial: %s", err)
	}

	return &Client{
		conn:        conn,
		rw:          bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn)),
		readTimeout: 2 * time.Second,
	}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Send writes one raw line, appending CRLF.
func (c *Client) Send(line string) error {
	if _, err := c.rw.WriteString(strings.TrimRight(line, "\r\n") + "\r\n"); err != nil {
		return err
	}
	return c.rw.Flush()
}

// RecvLine reads one raw CRLF-terminated line, trimmed of the terminator.
func (c *Client) RecvLine() (string, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
		return "", err
	}
	line, err := c.rw.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Recv reads one line and parses it as an IRC message.
func (c *Client) Recv() (irc.Message, error) {
	line, err := c.RecvLine()
	if err != nil {
		return irc.Message{}, err
	}
	m, err := irc.ParseMessage(line + "\r\n")
	if err != nil && err != irc.ErrTruncated {
		return irc.Message{}, fmt.Errorf("parse %q: %s", line, err)
	}
	return m, nil
}
