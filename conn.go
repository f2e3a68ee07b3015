package main

import (
	"bufio"
	"io"
	"net"
	"strings"

	"github.com/sirupsen/logrus"
)

// readLoop wraps conn's read half in a line-buffered reader and feeds each
// CRLF-terminated line to the parser then the dispatcher. It returns when
// the read half hits end-of-stream or a fatal I/O error.
func readLoop(conn net.Conn, s *Session, disp *Dispatcher, log *logrus.Logger) {
	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				log.WithFields(logrus.Fields{"session": s.String(), "error": err}).Debug("read error")
			}
			return
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}

		s.touch()
		cmd := ParseCommand(line)
		disp.Dispatch(s, cmd)
	}
}

// writeLoop is the session's sole writer to conn's write half. It drains the
// outbox until Close is called and the queue runs dry. The dispatcher and
// reader never touch conn directly — this keeps every send a non-blocking
// enqueue.
func writeLoop(conn net.Conn, s *Session, log *logrus.Logger) {
	for {
		line, ok := s.Out.Next()
		if !ok {
			return
		}
		if _, err := io.WriteString(conn, line); err != nil {
			log.WithFields(logrus.Fields{"session": s.String(), "error": err}).Debug("write error")
			return
		}
	}
}
