package imap

import (
	"testing"

	"github.com/meszmate/imap-wire/core"
)

func TestCodeString(t *testing.T) {
	cs, _ := core.NewCharset("UTF-8")
	tests := []struct {
		name string
		code Code
		want string
	}{
		{"alert", NewCodeAlert(), "ALERT"},
		{"parse", NewCodeParse(), "PARSE"},
		{"read-only", NewCodeReadOnly(), "READ-ONLY"},
		{"read-write", NewCodeReadWrite(), "READ-WRITE"},
		{"trycreate", NewCodeTryCreate(), "TRYCREATE"},
		{"uidnext", NewCodeUIDNext(4392), "UIDNEXT 4392"},
		{"uidvalidity", NewCodeUIDValidity(3857529045), "UIDVALIDITY 3857529045"},
		{"unseen", NewCodeUnseen(12), "UNSEEN 12"},
		{"badcharset", NewCodeBadCharset([]core.Charset{cs}), "BADCHARSET (UTF-8)"},
		{"capability", NewCodeCapability([]Cap{CapIMAP4rev1, CapIdle}), "CAPABILITY IMAP4rev1 IDLE"},
		{"permanentflags", NewCodePermanentFlags([]FlagPerm{FlagPermWildcard}), "PERMANENTFLAGS (\\*)"},
		{"referral", NewCodeReferral("IMAP://x/"), "REFERRAL IMAP://x/"},
		{"compressionactive", NewCodeCompressionActive(), "COMPRESSIONACTIVE"},
		{"overquota", NewCodeOverQuota(), "OVERQUOTA"},
		{"toobig", NewCodeTooBig(), "TOOBIG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeOtherString(t *testing.T) {
	atom, err := core.NewAtomExt("HIGHESTMODSEQ")
	if err != nil {
		t.Fatalf("NewAtomExt: %v", err)
	}
	s, _ := core.NewIString("715194045007")
	code := NewCodeOther(atom, core.NewNString(s))
	if got := code.String(); got != "HIGHESTMODSEQ 715194045007" {
		t.Errorf("String() = %q", got)
	}
	bare := NewCodeOther(atom, core.NewNStringNil())
	if got := bare.String(); got != "HIGHESTMODSEQ" {
		t.Errorf("String() = %q", got)
	}
}

func TestIMAPErrorMessage(t *testing.T) {
	err := ErrNoWithCode(NewCodeTryCreate(), core.UnvalidatedText("no such mailbox"))
	if err.Error() != "NO [TRYCREATE] no such mailbox" {
		t.Errorf("Error() = %q", err.Error())
	}
}
