package wire

import (
	"strconv"
	"strings"

	imap "github.com/meszmate/imap-wire"
	"github.com/meszmate/imap-wire/core"
)

// parseCommand parses a complete command line: tag SP body CRLF.
func parseCommand(c *cursor) (imap.Command, error) {
	var cmd imap.Command
	tag, err := parseTag(c)
	if err != nil {
		return cmd, err
	}
	if err := c.expectSP(); err != nil {
		return cmd, err
	}
	body, err := parseCommandBody(c)
	if err != nil {
		return cmd, err
	}
	if err := c.expectCRLF(); err != nil {
		return cmd, err
	}
	return imap.NewCommand(tag, body), nil
}

// parseCommandBody dispatches on the command keyword. Names are
// matched case-insensitively; unknown names — including the names of
// disabled extensions — fail.
func parseCommandBody(c *cursor) (imap.CommandBody, error) {
	start := c.pos
	name, err := c.takeWhile1(core.IsAtomChar, "command name")
	if err != nil {
		return nil, err
	}
	switch strings.ToUpper(name) {
	case "CAPABILITY":
		return imap.CommandCapability{}, nil
	case "NOOP":
		return imap.CommandNoop{}, nil
	case "LOGOUT":
		return imap.CommandLogout{}, nil
	case "STARTTLS":
		return imap.CommandStartTLS{}, nil
	case "CHECK":
		return imap.CommandCheck{}, nil
	case "CLOSE":
		return imap.CommandClose{}, nil
	case "EXPUNGE":
		return imap.CommandExpunge{}, nil
	case "UNSELECT":
		if !c.ext.Unselect {
			return nil, errExpected("command name", start)
		}
		return imap.CommandUnselect{}, nil
	case "IDLE":
		if !c.ext.Idle {
			return nil, errExpected("command name", start)
		}
		return imap.CommandIdle{}, nil

	case "LOGIN":
		return parseLogin(c)
	case "AUTHENTICATE":
		return parseAuthenticate(c)

	case "SELECT":
		m, err := parseMailboxArg(c)
		return imap.CommandSelect{Mailbox: m}, err
	case "EXAMINE":
		m, err := parseMailboxArg(c)
		return imap.CommandExamine{Mailbox: m}, err
	case "CREATE":
		m, err := parseMailboxArg(c)
		return imap.CommandCreate{Mailbox: m}, err
	case "DELETE":
		m, err := parseMailboxArg(c)
		return imap.CommandDelete{Mailbox: m}, err
	case "SUBSCRIBE":
		m, err := parseMailboxArg(c)
		return imap.CommandSubscribe{Mailbox: m}, err
	case "UNSUBSCRIBE":
		m, err := parseMailboxArg(c)
		return imap.CommandUnsubscribe{Mailbox: m}, err

	case "RENAME":
		from, err := parseMailboxArg(c)
		if err != nil {
			return nil, err
		}
		to, err := parseMailboxArg(c)
		if err != nil {
			return nil, err
		}
		return imap.CommandRename{From: from, To: to}, nil

	case "LIST":
		ref, pat, err := parseListArgs(c)
		return imap.CommandList{Reference: ref, Pattern: pat}, err
	case "LSUB":
		ref, pat, err := parseListArgs(c)
		return imap.CommandLsub{Reference: ref, Pattern: pat}, err

	case "STATUS":
		return parseStatusCommand(c)
	case "APPEND":
		return parseAppend(c)

	case "SEARCH":
		return parseSearchCommand(c, false)
	case "FETCH":
		return parseFetchCommand(c, false)
	case "STORE":
		return parseStoreCommand(c, false)
	case "COPY":
		return parseCopyCommand(c, false)
	case "MOVE":
		if !c.ext.Move {
			return nil, errExpected("command name", start)
		}
		return parseMoveCommand(c, false)

	case "UID":
		return parseUIDCommand(c)

	case "ENABLE":
		if !c.ext.Enable {
			return nil, errExpected("command name", start)
		}
		return parseEnable(c)
	case "COMPRESS":
		if !c.ext.Compress {
			return nil, errExpected("command name", start)
		}
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		alg, err := parseAtom(c)
		if err != nil {
			return nil, err
		}
		return imap.CommandCompress{Algorithm: alg.String()}, nil

	case "GETQUOTA":
		if !c.ext.Quota {
			return nil, errExpected("command name", start)
		}
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		root, err := parseAString(c)
		if err != nil {
			return nil, err
		}
		return imap.CommandGetQuota{Root: string(root.Bytes())}, nil
	case "GETQUOTAROOT":
		if !c.ext.Quota {
			return nil, errExpected("command name", start)
		}
		m, err := parseMailboxArg(c)
		return imap.CommandGetQuotaRoot{Mailbox: m}, err
	case "SETQUOTA":
		if !c.ext.Quota {
			return nil, errExpected("command name", start)
		}
		return parseSetQuota(c)
	}
	return nil, errExpected("command name", start)
}

// parseUIDCommand parses the UID variants of SEARCH, FETCH, STORE,
// COPY and MOVE.
func parseUIDCommand(c *cursor) (imap.CommandBody, error) {
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	start := c.pos
	name, err := c.takeWhile1(core.IsAtomChar, "command name")
	if err != nil {
		return nil, err
	}
	switch strings.ToUpper(name) {
	case "SEARCH":
		return parseSearchCommand(c, true)
	case "FETCH":
		return parseFetchCommand(c, true)
	case "STORE":
		return parseStoreCommand(c, true)
	case "COPY":
		return parseCopyCommand(c, true)
	case "MOVE":
		if !c.ext.Move {
			return nil, errExpected("command name", start)
		}
		return parseMoveCommand(c, true)
	}
	return nil, errExpected("UID command name", start)
}

func parseMailboxArg(c *cursor) (imap.Mailbox, error) {
	if err := c.expectSP(); err != nil {
		return imap.Mailbox{}, err
	}
	return parseMailbox(c)
}

func parseLogin(c *cursor) (imap.CommandBody, error) {
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	user, err := parseAString(c)
	if err != nil {
		return nil, err
	}
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	pass, err := parseAString(c)
	if err != nil {
		return nil, err
	}
	return imap.CommandLogin{
		Username: user,
		Password: core.NewSecret(string(pass.Bytes())),
	}, nil
}

// parseAuthenticate parses the mechanism name and, when SASL-IR is
// enabled, an optional initial response: a base64 blob, or "=" for
// an explicitly empty one.
func parseAuthenticate(c *cursor) (imap.CommandBody, error) {
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	mech, err := parseAtom(c)
	if err != nil {
		return nil, err
	}
	cmd := imap.CommandAuthenticate{Mechanism: mech}
	b, ok := c.peekByte()
	if !ok {
		return nil, Incomplete
	}
	if b != ' ' {
		return cmd, nil
	}
	if !c.ext.SASLIR {
		return nil, errExpected("CRLF", c.pos)
	}
	c.advance(1)
	var ir []byte
	if nb, ok := c.peekByte(); ok && nb == '=' {
		c.advance(1)
		ir = []byte{}
	} else {
		ir, err = parseBase64(c)
		if err != nil {
			return nil, err
		}
	}
	secret := core.NewSecret(ir)
	cmd.InitialResponse = &secret
	return cmd, nil
}

func parseListArgs(c *cursor) (imap.Mailbox, imap.ListMailboxPattern, error) {
	ref, err := parseMailboxArg(c)
	if err != nil {
		return imap.Mailbox{}, imap.ListMailboxPattern{}, err
	}
	if err := c.expectSP(); err != nil {
		return imap.Mailbox{}, imap.ListMailboxPattern{}, err
	}
	pat, err := parseListMailboxPattern(c)
	return ref, pat, err
}

// parseListMailboxPattern parses list-mailbox: a run of list-chars
// (atom-char plus the wildcards and ']'), or a quoted/literal string.
func parseListMailboxPattern(c *cursor) (imap.ListMailboxPattern, error) {
	b, ok := c.peekByte()
	if !ok {
		return imap.ListMailboxPattern{}, Incomplete
	}
	if b == '"' || b == '{' {
		s, err := parseIString(c)
		if err != nil {
			return imap.ListMailboxPattern{}, err
		}
		return imap.NewListMailboxPattern(string(s.Bytes()))
	}
	s, err := c.takeWhile1(func(b byte) bool {
		return b == '%' || b == '*' || core.IsAtomExtChar(b)
	}, "list-mailbox")
	if err != nil {
		return imap.ListMailboxPattern{}, err
	}
	return imap.NewListMailboxPattern(s)
}

func parseStatusCommand(c *cursor) (imap.CommandBody, error) {
	m, err := parseMailboxArg(c)
	if err != nil {
		return nil, err
	}
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	if err := c.expectByte('('); err != nil {
		return nil, err
	}
	var attrs []imap.StatusAttr
	for {
		a, err := parseStatusAttr(c)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
		b, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if b == ' ' {
			c.advance(1)
			continue
		}
		if b == ')' {
			c.advance(1)
			break
		}
		return nil, errExpected("')' or SP", c.pos)
	}
	return imap.CommandStatus{Mailbox: m, Attrs: attrs}, nil
}

func parseStatusAttr(c *cursor) (imap.StatusAttr, error) {
	start := c.pos
	word, err := c.takeWhile1(core.IsAtomChar, "status-att")
	if err != nil {
		return 0, err
	}
	switch strings.ToUpper(word) {
	case "MESSAGES":
		return imap.StatusAttrMessages, nil
	case "RECENT":
		return imap.StatusAttrRecent, nil
	case "UIDNEXT":
		return imap.StatusAttrUIDNext, nil
	case "UIDVALIDITY":
		return imap.StatusAttrUIDValidity, nil
	case "UNSEEN":
		return imap.StatusAttrUnseen, nil
	}
	return 0, errExpected("status-att", start)
}

// parseAppend parses mailbox [SP flag-list] [SP date-time] SP literal.
func parseAppend(c *cursor) (imap.CommandBody, error) {
	m, err := parseMailboxArg(c)
	if err != nil {
		return nil, err
	}
	cmd := imap.CommandAppend{Mailbox: m}
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	if b, ok := c.peekByte(); ok && b == '(' {
		flags, err := parseFlagList(c)
		if err != nil {
			return nil, err
		}
		cmd.Flags = flags
		if err := c.expectSP(); err != nil {
			return nil, err
		}
	} else if !ok {
		return nil, Incomplete
	}
	if b, ok := c.peekByte(); ok && b == '"' {
		t, err := parseDateTime(c)
		if err != nil {
			return nil, err
		}
		cmd.InternalDate = &t
		if err := c.expectSP(); err != nil {
			return nil, err
		}
	} else if !ok {
		return nil, Incomplete
	}
	lit, err := parseLiteral(c)
	if err != nil {
		return nil, err
	}
	cmd.Message = lit
	return cmd, nil
}

// parseFlagList parses "(" [flag *(SP flag)] ")".
func parseFlagList(c *cursor) ([]imap.Flag, error) {
	if err := c.expectByte('('); err != nil {
		return nil, err
	}
	var flags []imap.Flag
	if b, ok := c.peekByte(); ok && b == ')' {
		c.advance(1)
		return flags, nil
	}
	for {
		f, err := parseFlag(c)
		if err != nil {
			return nil, err
		}
		flags = append(flags, f)
		b, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if b == ' ' {
			c.advance(1)
			continue
		}
		if b == ')' {
			c.advance(1)
			return flags, nil
		}
		return nil, errExpected("')' or SP", c.pos)
	}
}

// parseSearchCommand parses [RETURN (...)] [CHARSET x] criteria. The
// two optional prefixes are identified by reading the next word and
// rewinding when it turns out to start the criteria instead.
func parseSearchCommand(c *cursor, uid bool) (imap.CommandBody, error) {
	cmd := imap.CommandSearch{UID: uid}
	for {
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		save := c.pos
		word, err := c.takeWhile1(core.IsAtomChar, "search argument")
		if err != nil {
			if err == Incomplete {
				return nil, err
			}
			// Not a bare word (e.g. a parenthesised key); rewind
			// and hand over to the criteria parser.
			c.pos = save
			break
		}
		switch strings.ToUpper(word) {
		case "CHARSET":
			if err := c.expectSP(); err != nil {
				return nil, err
			}
			cs, err := parseCharset(c)
			if err != nil {
				return nil, err
			}
			cmd.Charset = &cs
			continue
		case "RETURN":
			if err := c.expectSP(); err != nil {
				return nil, err
			}
			opts, err := parseSearchReturnOpts(c)
			if err != nil {
				return nil, err
			}
			cmd.Options = opts
			continue
		}
		c.pos = save
		break
	}
	criteria, err := parseSearchCriteria(c)
	if err != nil {
		return nil, err
	}
	cmd.Criteria = criteria
	return cmd, nil
}

// parseSearchReturnOpts parses "(" [return-opt *(SP return-opt)] ")".
func parseSearchReturnOpts(c *cursor) (imap.SearchOptions, error) {
	var opts imap.SearchOptions
	if err := c.expectByte('('); err != nil {
		return opts, err
	}
	if b, ok := c.peekByte(); ok && b == ')' {
		// An empty option list means "ALL" per RFC 4731.
		c.advance(1)
		opts.ReturnAll = true
		return opts, nil
	}
	for {
		start := c.pos
		word, err := c.takeWhile1(core.IsAtomChar, "search return option")
		if err != nil {
			return opts, err
		}
		switch strings.ToUpper(word) {
		case "MIN":
			opts.ReturnMin = true
		case "MAX":
			opts.ReturnMax = true
		case "ALL":
			opts.ReturnAll = true
		case "COUNT":
			opts.ReturnCount = true
		case "SAVE":
			opts.ReturnSave = true
		default:
			return opts, errExpected("search return option", start)
		}
		b, ok := c.peekByte()
		if !ok {
			return opts, Incomplete
		}
		if b == ' ' {
			c.advance(1)
			continue
		}
		if b == ')' {
			c.advance(1)
			return opts, nil
		}
		return opts, errExpected("')' or SP", c.pos)
	}
}

func parseFetchCommand(c *cursor, uid bool) (imap.CommandBody, error) {
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	set, err := parseSequenceSet(c)
	if err != nil {
		return nil, err
	}
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	macro, attrs, err := parseFetchSpec(c)
	if err != nil {
		return nil, err
	}
	return imap.CommandFetch{Set: set, Macro: macro, Attrs: attrs, UID: uid}, nil
}

// parseStoreCommand parses set SP ["+"/"-"] "FLAGS" [".SILENT"] SP
// (flag-list or bare flags).
func parseStoreCommand(c *cursor, uid bool) (imap.CommandBody, error) {
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	set, err := parseSequenceSet(c)
	if err != nil {
		return nil, err
	}
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	kind := imap.StoreReplace
	if b, ok := c.peekByte(); ok {
		if b == '+' {
			kind = imap.StoreAdd
			c.advance(1)
		} else if b == '-' {
			kind = imap.StoreRemove
			c.advance(1)
		}
	} else {
		return nil, Incomplete
	}
	if err := c.expectKeyword("FLAGS"); err != nil {
		return nil, err
	}
	response := imap.StoreAnswer
	if b, ok := c.peekByte(); ok && b == '.' {
		if err := c.expectKeyword(".SILENT"); err != nil {
			return nil, err
		}
		response = imap.StoreSilent
	} else if !ok {
		return nil, Incomplete
	}
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	var flags []imap.Flag
	if b, ok := c.peekByte(); ok && b == '(' {
		flags, err = parseFlagList(c)
		if err != nil {
			return nil, err
		}
	} else if !ok {
		return nil, Incomplete
	} else {
		for {
			f, err := parseFlag(c)
			if err != nil {
				return nil, err
			}
			flags = append(flags, f)
			nb, ok := c.peekByte()
			if !ok {
				return nil, Incomplete
			}
			if nb != ' ' {
				break
			}
			c.advance(1)
		}
	}
	return imap.CommandStore{Set: set, Kind: kind, Response: response, Flags: flags, UID: uid}, nil
}

func parseCopyCommand(c *cursor, uid bool) (imap.CommandBody, error) {
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	set, err := parseSequenceSet(c)
	if err != nil {
		return nil, err
	}
	m, err := parseMailboxArg(c)
	if err != nil {
		return nil, err
	}
	return imap.CommandCopy{Set: set, Mailbox: m, UID: uid}, nil
}

func parseMoveCommand(c *cursor, uid bool) (imap.CommandBody, error) {
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	set, err := parseSequenceSet(c)
	if err != nil {
		return nil, err
	}
	m, err := parseMailboxArg(c)
	if err != nil {
		return nil, err
	}
	return imap.CommandMove{Set: set, Mailbox: m, UID: uid}, nil
}

func parseEnable(c *cursor) (imap.CommandBody, error) {
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	var caps []imap.Cap
	for {
		capability, err := parseCap(c)
		if err != nil {
			return nil, err
		}
		caps = append(caps, capability)
		b, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if b != ' ' {
			break
		}
		c.advance(1)
	}
	return imap.CommandEnable{Capabilities: caps}, nil
}

// parseSetQuota parses root SP "(" [resource SP limit ...] ")";
// limits are 63-bit numbers per RFC 9208.
func parseSetQuota(c *cursor) (imap.CommandBody, error) {
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	root, err := parseAString(c)
	if err != nil {
		return nil, err
	}
	if err := c.expectSP(); err != nil {
		return nil, err
	}
	if err := c.expectByte('('); err != nil {
		return nil, err
	}
	var limits []imap.QuotaResourceLimit
	if b, ok := c.peekByte(); ok && b == ')' {
		c.advance(1)
		return imap.CommandSetQuota{Root: string(root.Bytes()), Resources: limits}, nil
	}
	for {
		name, err := parseAtom(c)
		if err != nil {
			return nil, err
		}
		if err := c.expectSP(); err != nil {
			return nil, err
		}
		limit, err := parseNumber64(c)
		if err != nil {
			return nil, err
		}
		limits = append(limits, imap.QuotaResourceLimit{
			Name:  imap.QuotaResource(strings.ToUpper(name.String())),
			Limit: limit,
		})
		b, ok := c.peekByte()
		if !ok {
			return nil, Incomplete
		}
		if b == ' ' {
			c.advance(1)
			continue
		}
		if b == ')' {
			c.advance(1)
			return imap.CommandSetQuota{Root: string(root.Bytes()), Resources: limits}, nil
		}
		return nil, errExpected("')' or SP", c.pos)
	}
}

// parseNumber64 parses a decimal run into an int64, used by the quota
// grammar whose resource limits exceed uint32.
func parseNumber64(c *cursor) (int64, error) {
	start := c.pos
	digits, err := c.takeWhile1(isDigit, "number")
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.ParseInt(digits, 10, 64)
	if convErr != nil {
		return 0, errBadNumber(start)
	}
	return n, nil
}
