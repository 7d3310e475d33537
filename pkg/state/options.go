// Package state carries the per-request state-store behavior toggles and
// their wire representations.
package state

import (
	"net/url"
	"sort"
	"strings"
)

// Consistency selects the read/write consistency the state store applies.
type Consistency int

const (
	// ConsistencyUndefined leaves the choice to the store's default.
	ConsistencyUndefined Consistency = iota
	// ConsistencyEventual allows stale reads in exchange for latency.
	ConsistencyEventual
	// ConsistencyStrong requires quorum acknowledgement.
	ConsistencyStrong
)

// String returns the wire form, or "" when undefined.
func (c Consistency) String() string {
	switch c {
	case ConsistencyEventual:
		return "eventual"
	case ConsistencyStrong:
		return "strong"
	default:
		return ""
	}
}

// Concurrency selects the write-conflict policy the state store applies.
type Concurrency int

const (
	// ConcurrencyUndefined leaves the choice to the store's default.
	ConcurrencyUndefined Concurrency = iota
	// ConcurrencyFirstWrite rejects writes against a stale ETag.
	ConcurrencyFirstWrite
	// ConcurrencyLastWrite lets the last write win unconditionally.
	ConcurrencyLastWrite
)

// String returns the wire form, or "" when undefined.
func (c Concurrency) String() string {
	switch c {
	case ConcurrencyFirstWrite:
		return "first-write"
	case ConcurrencyLastWrite:
		return "last-write"
	default:
		return ""
	}
}

// Options are the per-request state-store toggles.
type Options struct {
	Consistency Consistency
	Concurrency Concurrency
}

// Metadata renders the options as request metadata, omitting undefined
// values.
func (o Options) Metadata() map[string]string {
	md := make(map[string]string)
	if s := o.Consistency.String(); s != "" {
		md["consistency"] = s
	}
	if s := o.Concurrency.String(); s != "" {
		md["concurrency"] = s
	}
	return md
}

// QueryString renders request metadata as the query-string suffix the
// sidecar's HTTP API expects: keys prefixed with "metadata.", URL-escaped,
// sorted for determinism. Empty metadata yields "".
func QueryString(meta map[string]string) string {
	if len(meta) == 0 {
		return ""
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape("metadata." + k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(meta[k]))
	}
	return sb.String()
}
