package main

import (
	"fmt"
	"math/rand"
	"net"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
)

// Idle thresholds for the housekeeping sweep: a ping tier and a dead tier.
// This core only acts on the ping tier today — nothing drops a session past
// idleTimeBeforeDead yet.
const (
	idleTimeBeforePing = 2 * time.Minute
	idleTimeBeforeDead = 4 * time.Minute
)

// Server owns the listening socket, the shared Registry, and the pool of
// connection goroutines spawned off the accept loop.
type Server struct {
	cfg  Config
	reg  *Registry
	disp *Dispatcher
	log  *logrus.Logger

	nextID uint64
	conns  conc.WaitGroup
}

// NewServer wires a Server ready to Start.
func NewServer(cfg Config, log *logrus.Logger) *Server {
	reg := NewRegistry()
	return &Server{
		cfg:  cfg,
		reg:  reg,
		disp: NewDispatcher(reg, cfg.ServerName, log),
		log:  log,
	}
}

// Start binds the configured listening address and blocks on the accept
// loop. It returns when listening fails or the listener is closed.
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.cfg.ListenHost, s.cfg.ListenPort)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "unable to listen")
	}
	defer ln.Close()

	s.log.WithField("addr", addr).Info("listening")

	return s.Serve(ln)
}

// Serve runs the accept loop against an already-bound listener. Split out
// from Start so tests can bind an ephemeral port directly. It returns once
// the listener is closed; any other accept error is logged and the loop
// continues.
func (s *Server) Serve(ln net.Listener) error {
	go s.idleSweep()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return errors.Wrap(err, "accept failed")
			}
			s.log.WithError(err).Error("accept failed")
			continue
		}
		s.handleConn(conn)
	}
}

// handleConn performs connection-task startup and
// spawns the reader and writer tasks.
func (s *Server) handleConn(conn net.Conn) {
	id := atomic.AddUint64(&s.nextID, 1)
	sess := NewSession(id)

	nick := fmt.Sprintf("guest%d", rand.Intn(9999)+1)
	sess.setNick(nick)
	s.reg.AddUser(nick, sess)

	s.log.WithFields(logrus.Fields{"session": sess.String(), "remote": conn.RemoteAddr()}).Info("accepted connection")

	s.conns.Go(func() {
		writeLoop(conn, sess, s.log)
	})
	s.conns.Go(func() {
		readLoop(conn, sess, s.disp, s.log)
		sess.Out.Close()
		conn.Close()
	})
}

// idleSweep wakes periodically and PINGs sessions idle past
// idleTimeBeforePing. It never removes a session from the registry: that
// would contradict the documented QUIT/disconnect gap, so a
// session that never responds just accumulates an unacknowledged PING.
func (s *Server) idleSweep() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		for _, sess := range s.reg.AllUsers() {
			idle := sess.idleSince()
			if idle < idleTimeBeforePing {
				continue
			}
			sess.send(fmt.Sprintf("PING %s\r\n", s.cfg.ServerName))
		}
	}
}
