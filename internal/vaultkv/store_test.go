package vaultkv_test

import (
	"testing"

	"pearpass-host/internal/vaultkv"
)

func TestPut_WhileLocked_ReturnsErrVaultLocked(t *testing.T) {
	s := vaultkv.New(t.TempDir())
	if err := s.Put("k", "v"); err != vaultkv.ErrVaultLocked {
		t.Fatalf("want ErrVaultLocked, got %v", err)
	}
}

func TestGet_WhileLocked_ReturnsMissing(t *testing.T) {
	s := vaultkv.New(t.TempDir())
	s.Unlock("pass")
	if err := s.Put("k", "v"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	s.Lock()

	val, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get while locked: %v", err)
	}
	if val.IsPresent() {
		t.Fatal("want Missing while locked, got present value")
	}
}

func TestPutGet_RoundTrip(t *testing.T) {
	s := vaultkv.New(t.TempDir())
	s.Unlock("pass")

	if err := s.Put("k", "hello"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	val, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	data, ok := val.Data()
	if !ok || data != "hello" {
		t.Fatalf("want (hello, true), got (%q, %v)", data, ok)
	}
}

func TestGet_UnknownKey_ReturnsMissing(t *testing.T) {
	s := vaultkv.New(t.TempDir())
	s.Unlock("pass")
	val, err := s.Get("nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val.IsPresent() {
		t.Fatal("want Missing for unknown key")
	}
}

func TestGet_WrongPassphrase_Fails(t *testing.T) {
	dir := t.TempDir()
	s := vaultkv.New(dir)
	s.Unlock("correct")
	if err := s.Put("k", "v"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	s2 := vaultkv.New(dir)
	s2.Unlock("wrong")
	if _, err := s2.Get("k"); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}

func TestStatusInit_Idempotent(t *testing.T) {
	s := vaultkv.New(t.TempDir())
	initialized, err := s.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if initialized {
		t.Fatal("want uninitialized vault before Init")
	}
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("second Init should be a no-op, got: %v", err)
	}
	initialized, err = s.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !initialized {
		t.Fatal("want initialized vault after Init")
	}
}

func TestPut_ReplacesExistingKey(t *testing.T) {
	s := vaultkv.New(t.TempDir())
	s.Unlock("pass")

	if err := s.Put("k", "v1"); err != nil {
		t.Fatalf("Put v1: %v", err)
	}
	if err := s.Put("k", "v2"); err != nil {
		t.Fatalf("Put v2: %v", err)
	}
	val, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	data, _ := val.Data()
	if data != "v2" {
		t.Fatalf("want v2, got %q", data)
	}
}
