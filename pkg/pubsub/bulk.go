// Package pubsub shapes bulk-publish requests and responses for the
// sidecar's messaging API.
package pubsub

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"

	sdkerrors "github.com/stackmesh/runtime-sdk-go/pkg/errors"
)

// Content types assigned to bulk-publish entries.
const (
	ContentTypeJSON        = "application/json"
	ContentTypeText        = "text/plain"
	ContentTypeOctetStream = "application/octet-stream"
)

// Entry is one event inside a bulk-publish request.
type Entry struct {
	// EntryID identifies the event within the request; the sidecar echoes
	// it back in per-entry failure statuses.
	EntryID string

	// Event is the serialized payload.
	Event []byte

	// ContentType describes the payload encoding.
	ContentType string

	// Metadata carries per-entry overrides (partition key, TTL, ...).
	Metadata map[string]string
}

// NewEntry shapes a single event into a bulk-publish entry, assigning a
// fresh UUID entry ID and inferring the content type from the payload.
func NewEntry(event interface{}) (Entry, error) {
	data, contentType, err := serialize(event)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		EntryID:     uuid.NewString(),
		Event:       data,
		ContentType: contentType,
	}, nil
}

// NewEntries shapes a batch of events into bulk-publish entries. A single
// serialization failure fails the whole batch; partially shaped requests
// are never returned.
func NewEntries(events ...interface{}) ([]Entry, error) {
	entries := make([]Entry, 0, len(events))
	for _, event := range events {
		entry, err := NewEntry(event)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// DetectContentType reports the content type NewEntry would assign to the
// event: raw bytes pass through as octet-stream, strings are sniffed for
// JSON, everything else is marshaled as JSON.
func DetectContentType(event interface{}) string {
	switch v := event.(type) {
	case []byte:
		return ContentTypeOctetStream
	case string:
		if json.Valid([]byte(v)) {
			return ContentTypeJSON
		}
		return ContentTypeText
	default:
		return ContentTypeJSON
	}
}

func serialize(event interface{}) ([]byte, string, error) {
	switch v := event.(type) {
	case []byte:
		return v, ContentTypeOctetStream, nil
	case string:
		if json.Valid([]byte(v)) {
			return []byte(v), ContentTypeJSON, nil
		}
		return []byte(v), ContentTypeText, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", sdkerrors.SerializationError(err)
		}
		return data, ContentTypeJSON, nil
	}
}

// FailedEntry reports one entry the sidecar could not publish.
type FailedEntry struct {
	EntryID string
	Error   error
}

// Response is the shaped outcome of a bulk publish. An empty FailedEntries
// slice means every entry was accepted.
type Response struct {
	FailedEntries []FailedEntry
}

// NewResponse shapes per-entry statuses into a Response. Entries with a nil
// error are dropped; failures are ordered by entry ID so the result is
// deterministic.
func NewResponse(statuses map[string]error) Response {
	failed := make([]FailedEntry, 0, len(statuses))
	for entryID, err := range statuses {
		if err == nil {
			continue
		}
		failed = append(failed, FailedEntry{EntryID: entryID, Error: err})
	}
	sort.Slice(failed, func(i, j int) bool {
		return failed[i].EntryID < failed[j].EntryID
	})
	return Response{FailedEntries: failed}
}

// HasError reports whether any entry failed.
func (r Response) HasError() bool {
	return len(r.FailedEntries) > 0
}
