package client

import (
	"testing"
	"time"
)

func TestKeepAliveParams(t *testing.T) {
	if _, ok := (Options{}).KeepAliveParams(); ok {
		t.Error("keep-alive params should be absent when KeepAlive is false")
	}

	params, ok := (Options{KeepAlive: true}).KeepAliveParams()
	if !ok {
		t.Fatal("keep-alive params should be present when KeepAlive is true")
	}
	if params.Time != 10*time.Second || params.Timeout != 5*time.Second {
		t.Errorf("unexpected cadence: %+v", params)
	}
	if !params.PermitWithoutStream {
		t.Error("keep-alive must be permitted without active streams")
	}
}

func TestCallOptions(t *testing.T) {
	if opts := (Options{}).CallOptions(); opts != nil {
		t.Errorf("zero MaxBodySizeMB should yield nil call options, got %d", len(opts))
	}
	if opts := (Options{MaxBodySizeMB: -1}).CallOptions(); opts != nil {
		t.Error("negative MaxBodySizeMB should yield nil call options")
	}

	opts := (Options{MaxBodySizeMB: 8}).CallOptions()
	if len(opts) != 2 {
		t.Fatalf("expected recv and send size options, got %d", len(opts))
	}
}

func TestDialOptions(t *testing.T) {
	// Credentials only.
	if opts := (Options{}).DialOptions(); len(opts) != 1 {
		t.Errorf("bare options should yield 1 dial option, got %d", len(opts))
	}

	// Credentials + keepalive + default call options.
	opts := (Options{KeepAlive: true, MaxBodySizeMB: 4}).DialOptions()
	if len(opts) != 3 {
		t.Errorf("expected 3 dial options, got %d", len(opts))
	}
}
