package imap

import "github.com/meszmate/imap-wire/core"

// StatusKind is the four-way outcome a tagged or untagged status
// response reports (PREAUTH is a greeting-only outcome; see Greeting).
type StatusKind int

const (
	StatusOK StatusKind = iota
	StatusNo
	StatusBad
	StatusBye
)

func (k StatusKind) String() string {
	switch k {
	case StatusNo:
		return "NO"
	case StatusBad:
		return "BAD"
	case StatusBye:
		return "BYE"
	default:
		return "OK"
	}
}

// Response is Status{...} | Data(...) | Continue(...): everything a
// server may send on the wire outside of the initial greeting.
type Response interface {
	response()
}

// ResponseStatus is a tagged or untagged OK/NO/BAD/BYE response. Tag
// is nil for an untagged status response.
type ResponseStatus struct {
	Tag  *core.Tag
	Kind StatusKind
	Code *Code
	Text core.Text
}

// ResponseData wraps one untagged Data variant.
type ResponseData struct {
	Data Data
}

// ResponseContinue wraps a server continuation request arriving
// mid-response-stream (used by the Continue façade codec as well as
// embedded here for uniformity with Response's closed shape).
type ResponseContinue struct {
	Continue Continue
}

func (ResponseStatus) response()   {}
func (ResponseData) response()     {}
func (ResponseContinue) response() {}

// Data is the closed set of untagged response data a server sends.
type Data interface {
	data()
}

type (
	DataCapability struct{ Caps []Cap }
	DataList       struct{ List ListData }
	DataLsub       struct{ List ListData }
	DataStatus struct{ Status StatusData }
	DataSearch struct{ Search SearchData }
	// DataESearch is the extended search result form (RFC 4731),
	// distinguished from DataSearch so each re-encodes as the line
	// shape it arrived in.
	DataESearch struct{ Search SearchData }
	DataFlags      struct{ Flags []Flag }
	DataExists     struct{ Count uint32 }
	DataRecent     struct{ Count uint32 }
	// DataExpunge reports the sequence number of a message that was
	// just removed; existing higher sequence numbers shift down by one.
	DataExpunge    struct{ SeqNum uint32 }
	DataFetch      struct{ Message FetchMessageData }
	DataEnabled    struct{ Caps []Cap }
	DataQuota      struct{ Quota QuotaData }
	DataQuotaRoot  struct{ QuotaRoot QuotaRootData }
)

func (DataCapability) data() {}
func (DataList) data()       {}
func (DataLsub) data()       {}
func (DataStatus) data()     {}
func (DataSearch) data()     {}
func (DataESearch) data()    {}
func (DataFlags) data()      {}
func (DataExists) data()     {}
func (DataRecent) data()     {}
func (DataExpunge) data()    {}
func (DataFetch) data()      {}
func (DataEnabled) data()    {}
func (DataQuota) data()      {}
func (DataQuotaRoot) data()  {}

// IMAPError wraps a tagged or untagged status response of kind NO,
// BAD or BYE so it can be returned as a Go error by a calling application.
type IMAPError struct {
	Status ResponseStatus
}

func (e *IMAPError) Error() string {
	s := e.Status.Kind.String()
	if e.Status.Code != nil {
		s += " [" + e.Status.Code.String() + "]"
	}
	if e.Status.Text.String() != "" {
		s += " " + e.Status.Text.String()
	}
	return s
}

// ErrNo builds a NO status response error.
func ErrNo(text core.Text) *IMAPError {
	return &IMAPError{ResponseStatus{Kind: StatusNo, Text: text}}
}

// ErrNoWithCode builds a NO status response error carrying a
// response code.
func ErrNoWithCode(code Code, text core.Text) *IMAPError {
	return &IMAPError{ResponseStatus{Kind: StatusNo, Code: &code, Text: text}}
}

// ErrBad builds a BAD status response error.
func ErrBad(text core.Text) *IMAPError {
	return &IMAPError{ResponseStatus{Kind: StatusBad, Text: text}}
}

// ErrBye builds a BYE status response error.
func ErrBye(text core.Text) *IMAPError {
	return &IMAPError{ResponseStatus{Kind: StatusBye, Text: text}}
}
