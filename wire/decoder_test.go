package wire

import (
	"errors"
	"testing"
	"time"

	imap "github.com/meszmate/imap-wire"
	"github.com/meszmate/imap-wire/core"
)

func newTestCursor(s string) *cursor {
	return newCursor([]byte(s), AllExtensions)
}

// ---------- primitives ----------

func TestParseAtom(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple atom", input: "INBOX ", want: "INBOX"},
		{name: "atom with dot", input: "comp.mail ", want: "comp.mail"},
		{name: "stops at space", input: "FOO BAR", want: "FOO"},
		{name: "stops at paren", input: "FLAGS(", want: "FLAGS"},
		{name: "stops at bracket", input: "OK]x", want: "OK"},
		{name: "empty", input: " FOO", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := parseAtom(newTestCursor(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAtom() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && a.String() != tt.want {
				t.Errorf("parseAtom() = %q, want %q", a.String(), tt.want)
			}
		})
	}
}

func TestParseAtomIncompleteAtEOF(t *testing.T) {
	// An atom running to the end of the buffer may still be growing.
	if _, err := parseAtom(newTestCursor("HELLO")); !errors.Is(err, Incomplete) {
		t.Fatalf("error = %v, want Incomplete", err)
	}
}

func TestParseQuoted(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple", input: `"hello" `, want: "hello"},
		{name: "empty", input: `"" `, want: ""},
		{name: "escaped quote", input: `"say \"hi\"" `, want: `say "hi"`},
		{name: "escaped backslash", input: `"a\\b" `, want: `a\b`},
		{name: "bad escape", input: `"a\nb" `, wantErr: true},
		{name: "embedded CR", input: "\"a\rb\" ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := parseQuoted(newTestCursor(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseQuoted() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && q.String() != tt.want {
				t.Errorf("parseQuoted() = %q, want %q", q.String(), tt.want)
			}
		})
	}
}

func TestParseLiteralHeader(t *testing.T) {
	c := newTestCursor("{10}\r\nx")
	n, mode, err := parseLiteralHeader(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 10 || mode != core.LiteralSync {
		t.Errorf("got (%d, %v), want (10, sync)", n, mode)
	}

	c = newTestCursor("{10+}\r\nx")
	n, mode, err = parseLiteralHeader(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 10 || mode != core.LiteralNonSync {
		t.Errorf("got (%d, %v), want (10, non-sync)", n, mode)
	}
}

func TestParseLiteralHeaderOverflow(t *testing.T) {
	_, _, err := parseLiteralHeader(newTestCursor("{99999999999999999999}\r\n"))
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("error = %v, want syntax error (bad number)", err)
	}
}

func TestParseNumber(t *testing.T) {
	n, err := parseNumber(newTestCursor("42 "))
	if err != nil || n != 42 {
		t.Fatalf("parseNumber() = %d, %v", n, err)
	}
	if _, err := parseNZNumber(newTestCursor("0 ")); err == nil {
		t.Fatal("nz-number must reject zero")
	}
	if _, err := parseNumber(newTestCursor("4294967296 ")); err == nil {
		t.Fatal("number must reject uint32 overflow")
	}
}

func TestParseBase64Invalid(t *testing.T) {
	if _, err := parseBase64(newTestCursor("a=== ")); err == nil {
		t.Fatal("bad base64 must fail")
	}
}

func TestParseDateRejectsInvalidCalendarDate(t *testing.T) {
	for _, input := range []string{"30-Feb-2020 ", "29-Feb-2021 ", "31-Apr-2020 ", "0-Feb-2020 "} {
		if _, err := parseDate(newTestCursor(input)); err == nil {
			t.Errorf("parseDate(%q) must fail", input)
		}
	}
	if _, err := parseDate(newTestCursor("29-Feb-2020 ")); err != nil {
		t.Errorf("leap-year Feb 29 must parse, got %v", err)
	}
	d, err := parseDate(newTestCursor("1-Feb-2020 "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("date = %v, want %v", d, want)
	}
}

func TestParseSequenceSetWire(t *testing.T) {
	c := newTestCursor("1,3:5,10:* ")
	set, err := parseSequenceSet(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.String() != "1,3:5,10:*" {
		t.Errorf("set = %q", set.String())
	}
}

// ---------- commands ----------

func TestParseCommandCaseInsensitiveKeywords(t *testing.T) {
	for _, input := range []string{"a NOOP\r\n", "a noop\r\n", "a NoOp\r\n"} {
		cmd, _, err := NewCommandCodec().Decode([]byte(input))
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", input, err)
		}
		if _, ok := cmd.Body.(imap.CommandNoop); !ok {
			t.Errorf("Decode(%q) body = %T", input, cmd.Body)
		}
	}
}

func TestParseCommandUnknownName(t *testing.T) {
	_, _, err := NewCommandCodec().Decode([]byte("a FROB\r\n"))
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("error = %v, want syntax error", err)
	}
}

func TestParseLoginRedactsPassword(t *testing.T) {
	cmd, _, err := NewCommandCodec().Decode([]byte("a LOGIN alice hunter2\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	login := cmd.Body.(imap.CommandLogin)
	if login.Password.String() != "REDACTED" {
		t.Errorf("password leaked through String(): %q", login.Password.String())
	}
	if login.Password.Expose() != "hunter2" {
		t.Errorf("Expose() = %q, want hunter2", login.Password.Expose())
	}
}

func TestParseAppendWithoutOptionalArgs(t *testing.T) {
	cmd, _, err := NewCommandCodec().Decode([]byte("a APPEND saved {3}\r\nabc\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	app := cmd.Body.(imap.CommandAppend)
	if app.Flags != nil {
		t.Errorf("Flags = %v, want nil", app.Flags)
	}
	if app.InternalDate != nil {
		t.Errorf("InternalDate = %v, want nil", app.InternalDate)
	}
	if string(app.Message.Bytes()) != "abc" {
		t.Errorf("Message = %q", app.Message.Bytes())
	}
}

func TestParseDateTimeRejectsInvalidCalendarDate(t *testing.T) {
	_, _, err := NewCommandCodec().Decode([]byte("a APPEND saved \"30-Feb-2020 02:44:25 -0700\" {2}\r\nhi\r\n"))
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("Decode() error = %v, want syntax error for Feb 30", err)
	}
}

func TestParseAppendWithDate(t *testing.T) {
	cmd, _, err := NewCommandCodec().Decode([]byte("a APPEND saved \"17-Jul-1996 02:44:25 -0700\" {2}\r\nhi\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	app := cmd.Body.(imap.CommandAppend)
	if app.InternalDate == nil {
		t.Fatal("InternalDate = nil, want parsed date-time")
	}
	if app.InternalDate.Day() != 17 || app.InternalDate.Month() != time.July {
		t.Errorf("InternalDate = %v", app.InternalDate)
	}
}

func TestParseSearchImplicitAnd(t *testing.T) {
	cmd, _, err := NewCommandCodec().Decode([]byte("a SEARCH UNSEEN DELETED\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	search := cmd.Body.(imap.CommandSearch)
	and, ok := search.Criteria.(imap.SearchKeyAnd)
	if !ok {
		t.Fatalf("criteria = %T, want SearchKeyAnd", search.Criteria)
	}
	if len(and.Keys) != 2 {
		t.Errorf("keys = %d, want 2", len(and.Keys))
	}
}

func TestParseSearchSingleKeyNotWrapped(t *testing.T) {
	cmd, _, err := NewCommandCodec().Decode([]byte("a SEARCH UNSEEN\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	search := cmd.Body.(imap.CommandSearch)
	if _, ok := search.Criteria.(imap.SearchKeyUnseen); !ok {
		t.Errorf("criteria = %T, want bare SearchKeyUnseen", search.Criteria)
	}
}

func TestParseStoreVariants(t *testing.T) {
	tests := []struct {
		input    string
		kind     imap.StoreKind
		response imap.StoreResponse
	}{
		{"a STORE 1 FLAGS (\\Seen)\r\n", imap.StoreReplace, imap.StoreAnswer},
		{"a STORE 1 +FLAGS (\\Seen)\r\n", imap.StoreAdd, imap.StoreAnswer},
		{"a STORE 1 -FLAGS.SILENT (\\Seen)\r\n", imap.StoreRemove, imap.StoreSilent},
		{"a STORE 1 +flags.silent (\\Seen)\r\n", imap.StoreAdd, imap.StoreSilent},
	}
	for _, tt := range tests {
		cmd, _, err := NewCommandCodec().Decode([]byte(tt.input))
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", tt.input, err)
		}
		store := cmd.Body.(imap.CommandStore)
		if store.Kind != tt.kind || store.Response != tt.response {
			t.Errorf("Decode(%q) = kind %v response %v", tt.input, store.Kind, store.Response)
		}
	}
}

func TestParseUIDPrefix(t *testing.T) {
	cmd, _, err := NewCommandCodec().Decode([]byte("a UID COPY 1:3 backup\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	cp := cmd.Body.(imap.CommandCopy)
	if !cp.UID {
		t.Error("UID = false, want true")
	}
}

func TestParseSetQuota(t *testing.T) {
	cmd, _, err := NewCommandCodec().Decode([]byte("a SETQUOTA \"\" (STORAGE 512 MESSAGE 5000)\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	sq := cmd.Body.(imap.CommandSetQuota)
	if sq.Root != "" || len(sq.Resources) != 2 {
		t.Fatalf("parsed %+v", sq)
	}
	if sq.Resources[0].Name != imap.QuotaResourceStorage || sq.Resources[0].Limit != 512 {
		t.Errorf("resource 0 = %+v", sq.Resources[0])
	}
}

// ---------- responses ----------

func TestParseESearchData(t *testing.T) {
	r, _, err := NewResponseCodec().Decode([]byte("* ESEARCH (TAG \"a1\") UID MIN 2 MAX 47 ALL 1:3,5 COUNT 25\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	sd := r.(imap.ResponseData).Data.(imap.DataESearch).Search
	if sd.Tag != "a1" {
		t.Errorf("Tag = %q, want a1", sd.Tag)
	}
	if !sd.UID {
		t.Error("UID = false, want true")
	}
	if sd.Min == nil || *sd.Min != 2 {
		t.Errorf("Min = %v, want 2", sd.Min)
	}
	if sd.Max == nil || *sd.Max != 47 {
		t.Errorf("Max = %v, want 47", sd.Max)
	}
	if sd.All == nil || sd.All.String() != "1:3,5" {
		t.Errorf("All = %v, want 1:3,5", sd.All)
	}
	if sd.Count == nil || *sd.Count != 25 {
		t.Errorf("Count = %v, want 25", sd.Count)
	}
	if len(sd.AllSeqNums) != 0 {
		t.Errorf("AllSeqNums = %v, want empty for the extended form", sd.AllSeqNums)
	}
}

func TestParseESearchDataBare(t *testing.T) {
	r, _, err := NewResponseCodec().Decode([]byte("* ESEARCH\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	sd := r.(imap.ResponseData).Data.(imap.DataESearch).Search
	if sd.Tag != "" || sd.UID || sd.Min != nil || sd.Max != nil || sd.All != nil || sd.Count != nil {
		t.Errorf("bare ESEARCH should decode empty, got %+v", sd)
	}
}

func TestParseTaggedStatus(t *testing.T) {
	r, _, err := NewResponseCodec().Decode([]byte("a1 OK [READ-WRITE] SELECT completed\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	status := r.(imap.ResponseStatus)
	if status.Tag == nil || status.Tag.String() != "a1" {
		t.Errorf("Tag = %v", status.Tag)
	}
	if status.Kind != imap.StatusOK {
		t.Errorf("Kind = %v", status.Kind)
	}
	if status.Code == nil || status.Code.Kind() != imap.CodeReadWrite {
		t.Errorf("Code = %v", status.Code)
	}
	if status.Text.String() != "SELECT completed" {
		t.Errorf("Text = %q", status.Text.String())
	}
}

func TestParseUntaggedStatusHasNilTag(t *testing.T) {
	r, _, err := NewResponseCodec().Decode([]byte("* OK still here\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	status := r.(imap.ResponseStatus)
	if status.Tag != nil {
		t.Errorf("Tag = %v, want nil", status.Tag)
	}
}

func TestParseContinueBasicAndBase64(t *testing.T) {
	cont, _, err := NewContinueCodec().Decode([]byte("+ go ahead\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if cont.IsBase64() {
		t.Error("plain text continue misread as base64")
	}

	cont, _, err = NewContinueCodec().Decode([]byte("+ VGVzdA==\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	data, ok := cont.Base64()
	if !ok || string(data) != "Test" {
		t.Errorf("Base64() = %q, %v", data, ok)
	}
}

func TestParseCodeUIDNext(t *testing.T) {
	r, _, err := NewResponseCodec().Decode([]byte("* OK [UIDNEXT 4392] next\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	code := r.(imap.ResponseStatus).Code
	if code == nil || code.Kind() != imap.CodeUIDNext || code.Number() != 4392 {
		t.Errorf("code = %v", code)
	}
}

func TestParseCodeOtherWithText(t *testing.T) {
	r, _, err := NewResponseCodec().Decode([]byte("* OK [HIGHESTMODSEQ 715194045007] ok\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	code := r.(imap.ResponseStatus).Code
	if code == nil || code.Kind() != imap.CodeOther {
		t.Fatalf("code = %v, want Other", code)
	}
	atom, text := code.Other()
	if atom.String() != "HIGHESTMODSEQ" {
		t.Errorf("atom = %q", atom.String())
	}
	v, ok := text.Value()
	if !ok || string(v.Bytes()) != "715194045007" {
		t.Errorf("text = %v", text)
	}
}

func TestParseListDataDelimiters(t *testing.T) {
	r, _, err := NewResponseCodec().Decode([]byte("* LIST () NIL flat\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	ld := r.(imap.ResponseData).Data.(imap.DataList).List
	if ld.Delim != 0 {
		t.Errorf("Delim = %q, want 0 for NIL", ld.Delim)
	}

	r, _, err = NewResponseCodec().Decode([]byte("* LIST () \"\\\\\" root\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	ld = r.(imap.ResponseData).Data.(imap.DataList).List
	if ld.Delim != '\\' {
		t.Errorf("Delim = %q, want backslash", ld.Delim)
	}
}

func TestParseFlagsDataWithRecent(t *testing.T) {
	r, _, err := NewResponseCodec().Decode([]byte("* 5 FETCH (FLAGS (\\Seen \\Recent $Custom))\r\n"))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	flags := r.(imap.ResponseData).Data.(imap.DataFetch).Message.Items[0].(imap.FetchItemFlags).Flags
	if len(flags) != 3 {
		t.Fatalf("flags = %v", flags)
	}
	if !flags[1].IsRecent() {
		t.Error("second flag should be \\Recent")
	}
}

func TestParseBodyStructureMessageRFC822(t *testing.T) {
	input := "* 8 FETCH (BODYSTRUCTURE (\"MESSAGE\" \"RFC822\" NIL NIL NIL \"7BIT\" 342 " +
		"(\"date\" \"subj\" NIL NIL NIL NIL NIL NIL NIL \"<id>\") " +
		"(\"TEXT\" \"PLAIN\" NIL NIL NIL \"7BIT\" 10 2) 12))\r\n"
	r, _, err := NewResponseCodec().Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	bs := r.(imap.ResponseData).Data.(imap.DataFetch).Message.Items[0].(imap.FetchItemBodyStructure).Structure
	body, _, ok := bs.Single()
	if !ok {
		t.Fatal("want single part")
	}
	env, inner, lines, ok := body.Specific.Message()
	if !ok {
		t.Fatal("want message/rfc822 specific fields")
	}
	if lines != 12 {
		t.Errorf("lines = %d, want 12", lines)
	}
	if inner == nil || inner.IsMulti() {
		t.Errorf("inner structure = %v", inner)
	}
	if v, ok := env.MessageID.Value(); !ok || string(v.Bytes()) != "<id>" {
		t.Errorf("message id = %v", env.MessageID)
	}
}
