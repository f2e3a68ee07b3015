package main

import "fmt"

// stubValue fills any template slot the caller didn't populate.
const stubValue = "STUBBED_VALUE"

// ReplyParams is the parameter bag a numeric reply template draws from.
// Fields left unset render as stubValue.
type ReplyParams struct {
	Client  string // required
	Channel string
	Nick    string
	Host    string
	Message string
	Server  string
	Modes   string
	Count   int
	HasCount bool
	Date    string
}

func (p ReplyParams) channel() string {
	if p.Channel == "" {
		return stubValue
	}
	return p.Channel
}

func (p ReplyParams) nick() string {
	if p.Nick == "" {
		return stubValue
	}
	return p.Nick
}

func (p ReplyParams) host() string {
	if p.Host == "" {
		return stubValue
	}
	return p.Host
}

func (p ReplyParams) message() string {
	if p.Message == "" {
		return stubValue
	}
	return p.Message
}

func (p ReplyParams) server() string {
	if p.Server == "" {
		return stubValue
	}
	return p.Server
}

func (p ReplyParams) modes() string {
	if p.Modes == "" {
		return stubValue
	}
	return p.Modes
}

func (p ReplyParams) date() string {
	if p.Date == "" {
		return stubValue
	}
	return p.Date
}

func (p ReplyParams) count() string {
	if !p.HasCount {
		return stubValue
	}
	return fmt.Sprintf("%d", p.Count)
}

// FormatReply produces the exact wire line for the numeric reply code,
// prefixed with ":server <code> <client>" and terminated with CRLF.
//
// The three replies the command surface actually emits (332/353/366) have
// byte-exact hand-written templates; everything else falls back to the
// table-driven stub catalog in replies_catalog.go.
func FormatReply(code int, p ReplyParams) string {
	prefix := fmt.Sprintf(":server %03d %s", code, p.Client)

	switch code {
	case ReplyTopic:
		return fmt.Sprintf("%s %s :%s\r\n", prefix, p.channel(), stubValue)
	case ReplyNamReply:
		return fmt.Sprintf("%s = %s :%s\r\n", prefix, p.channel(), p.message())
	case ReplyEndOfNames:
		return fmt.Sprintf("%s %s :End of /NAMES list\r\n", prefix, p.channel())
	}

	if tmpl, ok := replyCatalog[code]; ok {
		return fmt.Sprintf("%s %s\r\n", prefix, tmpl(p))
	}

	return fmt.Sprintf("%s :%s\r\n", prefix, stubValue)
}
