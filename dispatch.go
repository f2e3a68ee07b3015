package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Dispatcher interprets a parsed Command against a session and the shared
// Registry. Each handler follows the same lock discipline as the registry
// and channel types it touches: acquire, mutate, release, never hold a
// session lock across a call into the registry.
type Dispatcher struct {
	reg        *Registry
	serverName string
	log        *logrus.Logger
}

// NewDispatcher builds a Dispatcher bound to reg. serverName is the token
// sent in "PONG <serverName> <token>" replies. Numeric replies do not use
// it: FormatReply always writes the fixed ":server" prefix.
func NewDispatcher(reg *Registry, serverName string, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{reg: reg, serverName: serverName, log: log}
}

// Dispatch executes cmd's protocol against s. It never blocks on I/O: every
// effect is either a direct enqueue to some session's outbox or a registry
// mutation guarded by the locks those types already hold.
func (d *Dispatcher) Dispatch(s *Session, cmd Command) {
	switch cmd.Kind {
	case CmdCapLs, CmdCapReq, CmdCapEnd:
		d.dispatchCap(s, cmd)
	case CmdNick:
		d.dispatchNick(s, cmd)
	case CmdUser:
		d.dispatchUser(s, cmd)
	case CmdJoin:
		d.dispatchJoin(s, cmd)
	case CmdPrivmsg:
		d.dispatchPrivmsg(s, cmd)
	case CmdPing:
		d.dispatchPing(s, cmd)
	case CmdNames:
		d.dispatchNames(s, cmd)
	case CmdQuit:
		d.dispatchQuit(s, cmd)
	default:
		d.log.WithField("raw", cmd.Raw).Info("unknown command")
	}
}

// dispatchCap acquires the session's exclusive state, runs handleCapability,
// and enqueues any resulting line to the session itself.
func (d *Dispatcher) dispatchCap(s *Session, cmd Command) {
	s.mu.Lock()
	line := handleCapability(s, cmd)
	s.mu.Unlock()
	if line != "" {
		s.send(line)
	}
}

// dispatchNick implements the NICK rename protocol: rename in
// the user registry, propagate the rename across every channel membership,
// update the session's own nickname, welcome the renaming session, and
// announce the change to everyone else.
func (d *Dispatcher) dispatchNick(s *Session, cmd Command) {
	old := s.nick()
	newNick := cmd.Nick

	d.reg.RenameUser(old, newNick)
	d.reg.RenameAcrossChannels(old, newNick)
	s.setNick(newNick)

	s.send(fmt.Sprintf(":server 001 %s :Welcome!\r\n", newNick))

	announce := fmt.Sprintf(":%s NICK %s\r\n", old, newNick)
	for _, other := range d.reg.AllUsers() {
		if other == s {
			continue
		}
		other.send(announce)
	}
}

// dispatchUser sets the session's username. No reply.
func (d *Dispatcher) dispatchUser(s *Session, cmd Command) {
	s.mu.Lock()
	s.User = cmd.User
	s.mu.Unlock()
}

// dispatchJoin implements the JOIN protocol: get-or-create the
// channel, bind the session into its membership, then enqueue the join
// announcement plus the topic/names/end-of-names burst to the joiner, and
// the bare join announcement to every other member.
func (d *Dispatcher) dispatchJoin(s *Session, cmd Command) {
	nick := s.nick()
	chanName := cmd.Channel

	ch := d.reg.GetOrCreateChannel(chanName)
	ch.Join(nick, s)

	joinLine := fmt.Sprintf(":%s JOIN %s\r\n", nick, chanName)

	s.send(joinLine)
	s.send(FormatReply(ReplyTopic, ReplyParams{Client: nick, Channel: chanName}))
	s.send(FormatReply(ReplyNamReply, ReplyParams{
		Client:  nick,
		Channel: chanName,
		Message: joinSpace(ch.MemberNicks()),
	}))
	s.send(FormatReply(ReplyEndOfNames, ReplyParams{Client: nick, Channel: chanName}))

	for _, member := range ch.MemberSessions() {
		if member == s {
			continue
		}
		member.send(joinLine)
	}
}

// dispatchPrivmsg implements PRIVMSG fan-out. A target
// beginning with "#" is a channel broadcast to every member but the sender;
// anything else is a direct message, silently dropped if the target nick
// isn't registered.
func (d *Dispatcher) dispatchPrivmsg(s *Session, cmd Command) {
	nick := s.nick()
	line := fmt.Sprintf(":%s PRIVMSG %s :%s\r\n", nick, cmd.Target, cmd.Text)

	if len(cmd.Target) > 0 && cmd.Target[0] == '#' {
		ch, ok := d.reg.GetChannel(cmd.Target)
		if !ok {
			return
		}
		for _, member := range ch.MemberSessions() {
			if member == s {
				continue
			}
			member.send(line)
		}
		return
	}

	target, ok := d.reg.GetUser(cmd.Target)
	if !ok {
		return
	}
	target.send(line)
}

// dispatchPing replies PONG to the sender only.
func (d *Dispatcher) dispatchPing(s *Session, cmd Command) {
	s.send(fmt.Sprintf("PONG %s %s\r\n", d.serverName, cmd.Token))
}

// dispatchNames implements NAMES: a single named channel
// gets its own NAMREPLY/ENDOFNAMES pair; an omitted argument walks every
// channel, emitting one NAMREPLY each, followed by one ENDOFNAMES with "*"
// standing in for the channel.
func (d *Dispatcher) dispatchNames(s *Session, cmd Command) {
	nick := s.nick()

	if cmd.HasChan {
		ch, ok := d.reg.GetChannel(cmd.Channel)
		if !ok {
			s.send(FormatReply(ReplyEndOfNames, ReplyParams{Client: nick, Channel: cmd.Channel}))
			return
		}
		s.send(FormatReply(ReplyNamReply, ReplyParams{
			Client:  nick,
			Channel: cmd.Channel,
			Message: joinSpace(ch.MemberNicks()),
		}))
		s.send(FormatReply(ReplyEndOfNames, ReplyParams{Client: nick, Channel: cmd.Channel}))
		return
	}

	for name, ch := range d.reg.AllChannels() {
		s.send(FormatReply(ReplyNamReply, ReplyParams{
			Client:  nick,
			Channel: name,
			Message: joinSpace(ch.MemberNicks()),
		}))
	}
	s.send(FormatReply(ReplyEndOfNames, ReplyParams{Client: nick, Channel: "*"}))
}

// dispatchQuit enqueues the departure announcement to the session itself.
// It does not remove the session from the registry or from any channel
// membership, and it does not announce the quit to anyone else — both are
// preserved gaps, not bugs to fix.
func (d *Dispatcher) dispatchQuit(s *Session, cmd Command) {
	s.send(fmt.Sprintf(":%s QUIT\r\n", s.nick()))
}
