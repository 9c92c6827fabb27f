package wire

import (
	"testing"
	"time"

	imap "github.com/meszmate/imap-wire"
	"github.com/meszmate/imap-wire/core"
)

func mustTag(t *testing.T, s string) core.Tag {
	t.Helper()
	tag, err := core.NewTag(s)
	if err != nil {
		t.Fatalf("NewTag(%q): %v", s, err)
	}
	return tag
}

func TestEncodeQuotedEscaping(t *testing.T) {
	m, err := imap.NewMailbox(`say "hi"`)
	if err != nil {
		t.Fatalf("NewMailbox: %v", err)
	}
	cmd := imap.NewCommand(mustTag(t, "a"), imap.CommandSelect{Mailbox: m})
	out := string(NewCommandCodec().Encode(cmd).Dump())
	want := "a SELECT \"say \\\"hi\\\"\"\r\n"
	if out != want {
		t.Errorf("Dump() = %q, want %q", out, want)
	}
}

func TestEncodeAppendFull(t *testing.T) {
	lit, err := core.NewLiteral([]byte("abc"))
	if err != nil {
		t.Fatalf("NewLiteral: %v", err)
	}
	m, _ := imap.NewMailbox("saved")
	date := time.Date(1996, time.July, 17, 2, 44, 25, 0, time.FixedZone("", -7*3600))
	cmd := imap.NewCommand(mustTag(t, "a"), imap.CommandAppend{
		Mailbox:      m,
		Flags:        []imap.Flag{imap.NewSystemFlag(imap.FlagSeen)},
		InternalDate: &date,
		Message:      lit,
	})
	actions := collectActions(t, NewCommandCodec().Encode(cmd))
	if len(actions) != 3 {
		t.Fatalf("got %d actions, want 3", len(actions))
	}
	if got := string(actions[0].Bytes()); got != "a APPEND saved (\\Seen) \"17-Jul-1996 02:44:25 -0700\" {3}\r\n" {
		t.Errorf("header = %q", got)
	}
	if actions[1].Kind() != ActionAwaitContinuation {
		t.Errorf("action 1 = %v, want AwaitContinuation", actions[1].Kind())
	}
	if got := string(actions[2].Bytes()); got != "abc\r\n" {
		t.Errorf("payload = %q", got)
	}
}

func TestEncodeSearchDateUnpadded(t *testing.T) {
	date := time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC)
	cmd := imap.NewCommand(mustTag(t, "a"), imap.CommandSearch{
		Criteria: imap.SearchKeyBefore{Date: date},
	})
	out := string(NewCommandCodec().Encode(cmd).Dump())
	if out != "a SEARCH BEFORE 1-Feb-2020\r\n" {
		t.Errorf("Dump() = %q", out)
	}
}

func TestEncodeNestedSearchKeys(t *testing.T) {
	and, err := imap.NewSearchKeyAnd([]imap.SearchKey{
		imap.SearchKeySeen{},
		imap.SearchKeyOr{
			Left:  imap.SearchKeyDeleted{},
			Right: imap.SearchKeyNot{Key: imap.SearchKeyDraft{}},
		},
	})
	if err != nil {
		t.Fatalf("NewSearchKeyAnd: %v", err)
	}
	cmd := imap.NewCommand(mustTag(t, "a"), imap.CommandSearch{Criteria: and})
	out := string(NewCommandCodec().Encode(cmd).Dump())
	if out != "a SEARCH SEEN OR DELETED NOT DRAFT\r\n" {
		t.Errorf("Dump() = %q", out)
	}
}

func TestEncodeStatusDataOrder(t *testing.T) {
	m, _ := imap.NewMailbox("blurdybloop")
	messages, uidnext := uint32(231), uint32(44292)
	r := imap.ResponseData{Data: imap.DataStatus{Status: imap.StatusData{
		Mailbox:     m,
		NumMessages: &messages,
		UIDNext:     &uidnext,
	}}}
	out := string(NewResponseCodec().Encode(r).Dump())
	if out != "* STATUS blurdybloop (MESSAGES 231 UIDNEXT 44292)\r\n" {
		t.Errorf("Dump() = %q", out)
	}
}

func TestEncodeGreetingWithCode(t *testing.T) {
	code := imap.NewCodeCapability([]imap.Cap{imap.CapIMAP4rev1, imap.CapStartTLS})
	text, err := core.NewText("ready")
	if err != nil {
		t.Fatalf("NewText: %v", err)
	}
	g := imap.NewGreeting(imap.GreetingOK, &code, text)
	out := string(NewGreetingCodec().Encode(g).Dump())
	if out != "* OK [CAPABILITY IMAP4rev1 STARTTLS] ready\r\n" {
		t.Errorf("Dump() = %q", out)
	}
}

func TestEncodePermanentFlagsWildcard(t *testing.T) {
	code := imap.NewCodePermanentFlags([]imap.FlagPerm{
		imap.NewFlagPerm(imap.NewSystemFlag(imap.FlagDeleted)),
		imap.FlagPermWildcard,
	})
	text := core.UnvalidatedText("Limited")
	r := imap.ResponseStatus{Kind: imap.StatusOK, Code: &code, Text: text}
	out := string(NewResponseCodec().Encode(r).Dump())
	if out != "* OK [PERMANENTFLAGS (\\Deleted \\*)] Limited\r\n" {
		t.Errorf("Dump() = %q", out)
	}
}

func TestEncodeContinueBase64(t *testing.T) {
	cont := imap.NewContinueBase64([]byte("Test"))
	out := string(NewContinueCodec().Encode(cont).Dump())
	if out != "+ VGVzdA==\r\n" {
		t.Errorf("Dump() = %q", out)
	}
}

func TestEncodeAuthenticateDataCancel(t *testing.T) {
	out := string(NewAuthenticateDataCodec().Encode(imap.AuthenticateDataCancel).Dump())
	if out != "*\r\n" {
		t.Errorf("Dump() = %q", out)
	}
}

func TestEncodeIdleDone(t *testing.T) {
	out := string(NewIdleDoneCodec().Encode(imap.IdleDone{}).Dump())
	if out != "DONE\r\n" {
		t.Errorf("Dump() = %q", out)
	}
}

func TestEncoderNextExhausts(t *testing.T) {
	e := NewIdleDoneCodec().Encode(imap.IdleDone{})
	if _, ok := e.Next(); !ok {
		t.Fatal("first Next() should yield the Send action")
	}
	if _, ok := e.Next(); ok {
		t.Fatal("second Next() should report exhaustion")
	}
}

func TestDumpSkipsFlowActions(t *testing.T) {
	// CRLF in the password forces the literal wire form, which on the
	// client side carries an AwaitContinuation that Dump must skip.
	user, _ := core.NewAString("alice")
	cmd := imap.NewCommand(mustTag(t, "a"), imap.CommandLogin{
		Username: user,
		Password: core.NewSecret("line1\r\nline2"),
	})
	dump := string(NewCommandCodec().Encode(cmd).Dump())
	want := "a LOGIN alice {12}\r\nline1\r\nline2\r\n"
	if dump != want {
		t.Errorf("Dump() = %q, want %q", dump, want)
	}
}
