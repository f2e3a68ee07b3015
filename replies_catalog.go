package main

import "fmt"

// Numeric reply codes. Only three of these are ever produced through
// FormatReply by the command surface this dispatcher implements
// (332/353/366; NICK writes its own ":server 001 <nick> :Welcome!" line and
// 002-004 are never sent); the rest exist so FormatReply has
// a byte-stable template to fall back on if a future command needs one,
// instead of inventing an ad hoc line at the call site.
const (
	ReplyWelcome   = 1
	ReplyYourHost  = 2
	ReplyCreated   = 3
	ReplyMyInfo    = 4
	ReplyISupport  = 5
	ReplyBounce    = 10

	ReplyStatsCommands = 212
	ReplyEndOfStats    = 219
	ReplyUModeIs       = 221
	ReplyStatsUptime   = 242
	ReplyLUserClient   = 251
	ReplyLUserOp       = 252
	ReplyLUserUnknown  = 253
	ReplyLUserChannels = 254
	ReplyLUserMe       = 255
	ReplyAdminMe       = 256
	ReplyAdminLoc1     = 257
	ReplyAdminLoc2     = 258
	ReplyAdminEmail    = 259
	ReplyTryAgain      = 263
	ReplyLocalUsers    = 265
	ReplyGlobalUsers   = 266
	ReplyWhoisCertFP   = 276

	ReplyAway          = 301
	ReplyUserHost      = 302
	ReplyUnAway        = 305
	ReplyNowAway       = 306
	ReplyWhoisRegNick  = 307
	ReplyWhoisUser     = 311
	ReplyWhoisServer   = 312
	ReplyWhoisOperator = 313
	ReplyWhoWasUser    = 314
	ReplyEndOfWho      = 315
	ReplyWhoisIdle     = 317
	ReplyEndOfWhois    = 318
	ReplyWhoisChannels = 319
	ReplyWhoisSpecial  = 320
	ReplyListStart     = 321
	ReplyList          = 322
	ReplyListEnd       = 323
	ReplyChannelModeIs = 324
	ReplyCreationTime  = 329
	ReplyWhoisAccount  = 330
	ReplyNoTopic       = 331
	ReplyTopic         = 332
	ReplyTopicWhoTime  = 333
	ReplyInviteList       = 336
	ReplyEndOfInviteList  = 337
	ReplyWhoisActually    = 338
	ReplyInviting         = 341
	ReplyInvexList        = 346
	ReplyEndOfInvexList   = 347
	ReplyExceptList       = 348
	ReplyEndOfExceptList  = 349
	ReplyVersion          = 351
	ReplyWhoReply         = 352
	ReplyNamReply         = 353
	ReplyLinks            = 364
	ReplyEndOfLinks       = 365
	ReplyEndOfNames       = 366
	ReplyBanList          = 367
	ReplyEndOfBanList     = 368
	ReplyEndOfWhoWas      = 369
	ReplyInfo             = 371
	ReplyMOTD             = 372
	ReplyEndOfInfo        = 374
	ReplyMOTDStart        = 375
	ReplyEndOfMOTD        = 376
	ReplyWhoisHost        = 378
	ReplyWhoisModes       = 379
	ReplyYoureOper        = 381
	ReplyRehashing        = 382
	ReplyTime             = 391

	ErrUnknownError      = 400
	ErrNoSuchNick        = 401
	ErrNoSuchServer      = 402
	ErrNoSuchChannel     = 403
	ErrCannotSendToChan  = 404
	ErrTooManyChannels   = 405
	ErrWasNoSuchNick     = 406
	ErrNoOrigin          = 409
	ErrNoRecipient       = 411
	ErrNoTextToSend      = 412
	ErrInputTooLong      = 417
	ErrUnknownCommand    = 421
	ErrNoMOTD            = 422
	ErrNoNicknameGiven   = 431
	ErrErroneousNickname = 432
	ErrNicknameInUse     = 433
	ErrNickCollision     = 436
	ErrUserNotInChannel  = 441
	ErrNotOnChannel      = 442
	ErrUserOnChannel     = 443
	ErrNotRegistered     = 451
	ErrNeedMoreParams    = 461
	ErrAlreadyRegistered = 462
	ErrPasswdMismatch    = 464
	ErrYoureBannedCreep  = 465
	ErrChannelIsFull     = 471
	ErrUnknownMode       = 472
	ErrInviteOnlyChan    = 473
	ErrBannedFromChan    = 474
	ErrBadChannelKey     = 475
	ErrBadChanMask       = 476
	ErrNoPrivileges      = 481
	ErrChanOprivsNeeded  = 482
	ErrCantKillServer    = 483
	ErrNoOperHost        = 491
	ErrUModeUnknownFlag  = 501
	ErrUsersDontMatch    = 502
	ErrHelpNotFound      = 524
	ErrInvalidKey        = 525

	ReplyStartTLS       = 670
	ReplyWhoisSecure    = 671
	ErrStartTLS         = 691
	ErrInvalidModeParam = 696
	ReplyHelpStart      = 704
	ReplyHelpTxt        = 705
	ReplyEndOfHelp      = 706
	ErrNoPrivs          = 723

	ReplyLoggedIn     = 900
	ReplyLoggedOut    = 901
	ErrNickLocked     = 902
	ReplySASLSuccess  = 903
	ErrSASLFail       = 904
	ErrSASLTooLong    = 905
	ErrSASLAborted    = 906
	ErrSASLAlready    = 907
	ReplySASLMechs    = 908
)

// replyCatalog maps a numeric reply code to a function producing everything
// that follows "<client>" on the wire line. FormatReply supplies the
// ":server <code> <client>" prefix and the trailing CRLF; entries below
// fill unpopulated template slots with stubValue.
var replyCatalog = map[int]func(ReplyParams) string{
	ReplyWelcome:  func(p ReplyParams) string { return fmt.Sprintf(":Welcome to the %s Network, %s", stubValue, p.Client) },
	ReplyYourHost: func(p ReplyParams) string { return ":Your host is OxideIRC, running version 0.1" },
	ReplyCreated:  func(p ReplyParams) string { return fmt.Sprintf(":This server was created %s", p.date()) },
	ReplyMyInfo:   func(p ReplyParams) string { return fmt.Sprintf("%s %s %s %s %s", stubValue, stubValue, stubValue, stubValue, stubValue) },
	ReplyISupport: func(p ReplyParams) string { return fmt.Sprintf("%s :are supported by this server", stubValue) },
	ReplyBounce:   func(p ReplyParams) string { return fmt.Sprintf("%s %s :%s", stubValue, stubValue, stubValue) },

	ReplyStatsCommands: func(p ReplyParams) string { return fmt.Sprintf("%s %s", stubValue, p.count()) },
	ReplyEndOfStats:    func(p ReplyParams) string { return fmt.Sprintf("%s :End of STATS report", stubValue) },
	ReplyUModeIs:       func(p ReplyParams) string { return p.modes() },
	ReplyStatsUptime:   func(p ReplyParams) string { return fmt.Sprintf(":Server Up %s", p.date()) },
	ReplyLUserClient:   func(p ReplyParams) string { return fmt.Sprintf(":There are %s users and %s invisible on %s servers", stubValue, stubValue, stubValue) },
	ReplyLUserOp:       func(p ReplyParams) string { return fmt.Sprintf("%s :operator(s) online", stubValue) },
	ReplyLUserUnknown:  func(p ReplyParams) string { return fmt.Sprintf("%s :unknown connection(s)", stubValue) },
	ReplyLUserChannels: func(p ReplyParams) string { return fmt.Sprintf("%s :channels formed", stubValue) },
	ReplyLUserMe:       func(p ReplyParams) string { return fmt.Sprintf(":I have %s clients and %s servers", stubValue, stubValue) },
	ReplyAdminMe:       func(p ReplyParams) string { return ":Administrative info" },
	ReplyAdminLoc1:     func(p ReplyParams) string { return fmt.Sprintf(":%s", stubValue) },
	ReplyAdminLoc2:     func(p ReplyParams) string { return fmt.Sprintf(":%s", stubValue) },
	ReplyAdminEmail:    func(p ReplyParams) string { return fmt.Sprintf(":%s", stubValue) },
	ReplyTryAgain:      func(p ReplyParams) string { return fmt.Sprintf("%s :Please wait a while and try again.", stubValue) },
	ReplyLocalUsers:    func(p ReplyParams) string { return fmt.Sprintf("%s %s :Current local users %s, max %s", stubValue, stubValue, stubValue, stubValue) },
	ReplyGlobalUsers:   func(p ReplyParams) string { return fmt.Sprintf("%s %s :Current global users %s, max %s", stubValue, stubValue, stubValue, stubValue) },
	ReplyWhoisCertFP:   func(p ReplyParams) string { return fmt.Sprintf("%s :has client certificate fingerprint %s", p.nick(), stubValue) },

	ReplyAway:          func(p ReplyParams) string { return fmt.Sprintf("%s :%s", p.nick(), stubValue) },
	ReplyUserHost:      func(p ReplyParams) string { return fmt.Sprintf(":%s", stubValue) },
	ReplyUnAway:        func(p ReplyParams) string { return ":You are no longer marked as being away" },
	ReplyNowAway:       func(p ReplyParams) string { return ":You have been marked as being away" },
	ReplyWhoisRegNick:  func(p ReplyParams) string { return fmt.Sprintf("%s :has identified for this nick", p.nick()) },
	ReplyWhoisUser:     func(p ReplyParams) string { return fmt.Sprintf("%s %s %s * :%s", p.nick(), stubValue, p.host(), stubValue) },
	ReplyWhoisServer:   func(p ReplyParams) string { return fmt.Sprintf("%s %s :%s", p.nick(), p.server(), stubValue) },
	ReplyWhoisOperator: func(p ReplyParams) string { return fmt.Sprintf("%s :is an IRC operator", p.nick()) },
	ReplyWhoWasUser:    func(p ReplyParams) string { return fmt.Sprintf("%s %s %s * :%s", p.nick(), stubValue, p.host(), stubValue) },
	ReplyEndOfWho:      func(p ReplyParams) string { return fmt.Sprintf("%s :End of WHO list", stubValue) },
	ReplyWhoisIdle:     func(p ReplyParams) string { return fmt.Sprintf("%s %s :seconds idle since %s", p.nick(), stubValue, stubValue) },
	ReplyEndOfWhois:    func(p ReplyParams) string { return fmt.Sprintf("%s :End of /WHOIS list", p.nick()) },
	ReplyWhoisChannels: func(p ReplyParams) string { return fmt.Sprintf("%s :%s", p.nick(), stubValue) },
	ReplyWhoisSpecial:  func(p ReplyParams) string { return fmt.Sprintf("%s :%s", p.nick(), stubValue) },
	ReplyListStart:     func(p ReplyParams) string { return ":Channel :Users Name" },
	ReplyList:          func(p ReplyParams) string { return fmt.Sprintf("%s %s :%s", p.channel(), stubValue, stubValue) },
	ReplyListEnd:       func(p ReplyParams) string { return ":End of /LIST" },
	ReplyChannelModeIs: func(p ReplyParams) string { return fmt.Sprintf("%s %s %s", p.channel(), p.modes(), stubValue) },
	ReplyCreationTime:  func(p ReplyParams) string { return fmt.Sprintf("%s %s", p.channel(), stubValue) },
	ReplyWhoisAccount:  func(p ReplyParams) string { return fmt.Sprintf("%s %s :is logged in as", p.nick(), stubValue) },
	ReplyNoTopic:       func(p ReplyParams) string { return fmt.Sprintf("%s :No topic is set", p.channel()) },
	ReplyTopicWhoTime:  func(p ReplyParams) string { return fmt.Sprintf("%s %s %s", p.channel(), stubValue, stubValue) },

	ReplyInviteList:      func(p ReplyParams) string { return p.channel() },
	ReplyEndOfInviteList: func(p ReplyParams) string { return ":End of /INVITE list" },
	ReplyWhoisActually:   func(p ReplyParams) string { return fmt.Sprintf("%s :is actually using host %s", p.nick(), p.host()) },
	ReplyInviting:        func(p ReplyParams) string { return fmt.Sprintf("%s %s", p.nick(), p.channel()) },
	ReplyInvexList:       func(p ReplyParams) string { return fmt.Sprintf("%s %s", p.channel(), stubValue) },
	ReplyEndOfInvexList:  func(p ReplyParams) string { return fmt.Sprintf("%s :End of Channel Invite Exception List", p.channel()) },
	ReplyExceptList:      func(p ReplyParams) string { return fmt.Sprintf("%s %s", p.channel(), stubValue) },
	ReplyEndOfExceptList: func(p ReplyParams) string { return fmt.Sprintf("%s :End of channel exception list", p.channel()) },
	ReplyVersion:         func(p ReplyParams) string { return fmt.Sprintf("%s %s :%s", stubValue, stubValue, stubValue) },
	ReplyWhoReply:        func(p ReplyParams) string { return fmt.Sprintf("%s %s %s %s %s %s :%s %s", p.channel(), stubValue, stubValue, stubValue, stubValue, stubValue, stubValue, stubValue) },
	ReplyLinks:           func(p ReplyParams) string { return fmt.Sprintf("* %s :%s %s", stubValue, stubValue, stubValue) },
	ReplyEndOfLinks:      func(p ReplyParams) string { return "* :End of /LINKS list" },
	ReplyBanList:         func(p ReplyParams) string { return fmt.Sprintf("%s %s %s %s", p.channel(), stubValue, stubValue, stubValue) },
	ReplyEndOfBanList:    func(p ReplyParams) string { return fmt.Sprintf("%s :End of channel ban list", p.channel()) },
	ReplyEndOfWhoWas:     func(p ReplyParams) string { return fmt.Sprintf("%s :End of WHOWAS", p.nick()) },
	ReplyInfo:            func(p ReplyParams) string { return fmt.Sprintf(":%s", stubValue) },
	ReplyMOTD:            func(p ReplyParams) string { return fmt.Sprintf(":%s", p.message()) },
	ReplyEndOfInfo:       func(p ReplyParams) string { return ":End of INFO list" },
	ReplyMOTDStart:       func(p ReplyParams) string { return fmt.Sprintf(":- %s Message of the day - ", p.server()) },
	ReplyEndOfMOTD:       func(p ReplyParams) string { return ":End of /MOTD command." },
	ReplyWhoisHost:       func(p ReplyParams) string { return fmt.Sprintf("%s :is connecting from *@%s %s", p.nick(), stubValue, stubValue) },
	ReplyWhoisModes:      func(p ReplyParams) string { return fmt.Sprintf("%s :is using modes %s", p.nick(), p.modes()) },
	ReplyYoureOper:       func(p ReplyParams) string { return ":You are now an IRC operator" },
	ReplyRehashing:       func(p ReplyParams) string { return fmt.Sprintf("%s :Rehashing", stubValue) },
	ReplyTime:            func(p ReplyParams) string { return fmt.Sprintf("%s %s %s :%s", p.server(), stubValue, stubValue, stubValue) },

	ErrUnknownError:      func(p ReplyParams) string { return fmt.Sprintf("%s :%s", stubValue, stubValue) },
	ErrNoSuchNick:        func(p ReplyParams) string { return fmt.Sprintf("%s :No such nick/channel", p.nick()) },
	ErrNoSuchServer:      func(p ReplyParams) string { return fmt.Sprintf("%s :No such server", stubValue) },
	ErrNoSuchChannel:     func(p ReplyParams) string { return fmt.Sprintf("%s :No such channel", p.channel()) },
	ErrCannotSendToChan:  func(p ReplyParams) string { return fmt.Sprintf("%s :Cannot send to channel", p.channel()) },
	ErrTooManyChannels:   func(p ReplyParams) string { return fmt.Sprintf("%s :You have joined too many channels", p.channel()) },
	ErrWasNoSuchNick:     func(p ReplyParams) string { return fmt.Sprintf("%s :There was no such nickname", p.nick()) },
	ErrNoOrigin:          func(p ReplyParams) string { return ":No origin specified" },
	ErrNoRecipient:       func(p ReplyParams) string { return fmt.Sprintf(":No recipient given (%s)", stubValue) },
	ErrNoTextToSend:      func(p ReplyParams) string { return ":No text to send" },
	ErrInputTooLong:      func(p ReplyParams) string { return ":Input line was too long" },
	ErrUnknownCommand:    func(p ReplyParams) string { return fmt.Sprintf("%s :Unknown command", stubValue) },
	ErrNoMOTD:            func(p ReplyParams) string { return ":MOTD File is missing" },
	ErrNoNicknameGiven:   func(p ReplyParams) string { return ":No nickname given" },
	ErrErroneousNickname: func(p ReplyParams) string { return fmt.Sprintf("%s :Erroneous nickname", p.nick()) },
	ErrNicknameInUse:     func(p ReplyParams) string { return fmt.Sprintf("%s :Nickname is already in use", p.nick()) },
	ErrNickCollision:     func(p ReplyParams) string { return fmt.Sprintf("%s :Nickname collision KILL", p.nick()) },
	ErrUserNotInChannel:  func(p ReplyParams) string { return fmt.Sprintf("%s %s :They aren't on that channel", p.nick(), p.channel()) },
	ErrNotOnChannel:      func(p ReplyParams) string { return fmt.Sprintf("%s :You're not on that channel", p.channel()) },
	ErrUserOnChannel:     func(p ReplyParams) string { return fmt.Sprintf("%s %s :is already on channel", stubValue, p.channel()) },
	ErrNotRegistered:     func(p ReplyParams) string { return ":You have not registered" },
	ErrNeedMoreParams:    func(p ReplyParams) string { return fmt.Sprintf("%s :Not enough parameters", stubValue) },
	ErrAlreadyRegistered: func(p ReplyParams) string { return ":You may not reregister" },
	ErrPasswdMismatch:    func(p ReplyParams) string { return ":Password incorrect" },
	ErrYoureBannedCreep:  func(p ReplyParams) string { return ":You are banned from this server" },
	ErrChannelIsFull:     func(p ReplyParams) string { return fmt.Sprintf("%s :Cannot join channel (+l)", p.channel()) },
	ErrUnknownMode:       func(p ReplyParams) string { return fmt.Sprintf("%s :is unknown mode char to me", stubValue) },
	ErrInviteOnlyChan:    func(p ReplyParams) string { return fmt.Sprintf("%s :Cannot join channel (+i)", p.channel()) },
	ErrBannedFromChan:    func(p ReplyParams) string { return fmt.Sprintf("%s :Cannot join channel (+b)", p.channel()) },
	ErrBadChannelKey:     func(p ReplyParams) string { return fmt.Sprintf("%s :Cannot join channel (+k)", p.channel()) },
	ErrBadChanMask:       func(p ReplyParams) string { return fmt.Sprintf("%s :Bad Channel Mask", p.channel()) },
	ErrNoPrivileges:      func(p ReplyParams) string { return ":Permission Denied- You're not an IRC operator" },
	ErrChanOprivsNeeded:  func(p ReplyParams) string { return fmt.Sprintf("%s :You're not channel operator", p.channel()) },
	ErrCantKillServer:    func(p ReplyParams) string { return ":You cant kill a server!" },
	ErrNoOperHost:        func(p ReplyParams) string { return ":No O-lines for your host" },
	ErrUModeUnknownFlag:  func(p ReplyParams) string { return ":Unknown MODE flag" },
	ErrUsersDontMatch:    func(p ReplyParams) string { return ":Cant change mode for other users" },
	ErrHelpNotFound:      func(p ReplyParams) string { return fmt.Sprintf("%s :No help available on this topic", stubValue) },
	ErrInvalidKey:        func(p ReplyParams) string { return ":Key is not valid for this server" },
	ErrInvalidModeParam:  func(p ReplyParams) string { return fmt.Sprintf("%s %s :Invalid mode parameter", stubValue, p.channel()) },
	ErrNoPrivs:           func(p ReplyParams) string { return fmt.Sprintf("%s :Insufficient oper privileges.", stubValue) },
	ReplyStartTLS:        func(p ReplyParams) string { return ":STARTTLS successful, proceed with TLS handshake" },
	ReplyWhoisSecure:     func(p ReplyParams) string { return fmt.Sprintf("%s :is using a secure connection", p.nick()) },
	ErrStartTLS:          func(p ReplyParams) string { return fmt.Sprintf(":STARTTLS failed (%s)", stubValue) },

	ReplyHelpStart: func(p ReplyParams) string { return fmt.Sprintf("%s :%s", stubValue, stubValue) },
	ReplyHelpTxt:   func(p ReplyParams) string { return fmt.Sprintf("%s :%s", stubValue, stubValue) },
	ReplyEndOfHelp: func(p ReplyParams) string { return fmt.Sprintf("%s :%s", stubValue, stubValue) },

	ReplyLoggedIn:    func(p ReplyParams) string { return fmt.Sprintf("%s %s :You are now logged in as %s", p.nick(), stubValue, stubValue) },
	ReplyLoggedOut:   func(p ReplyParams) string { return fmt.Sprintf("%s :You are now logged out", p.nick()) },
	ErrNickLocked:    func(p ReplyParams) string { return ":You must use a nick assigned to you" },
	ReplySASLSuccess: func(p ReplyParams) string { return ":SASL authentication successful" },
	ErrSASLFail:      func(p ReplyParams) string { return ":SASL authentication failed" },
	ErrSASLTooLong:   func(p ReplyParams) string { return ":SASL message too long" },
	ErrSASLAborted:   func(p ReplyParams) string { return ":SASL authentication aborted" },
	ErrSASLAlready:   func(p ReplyParams) string { return ":You have already authenticated using SASL" },
	ReplySASLMechs:   func(p ReplyParams) string { return fmt.Sprintf(":%s", stubValue) },
}
