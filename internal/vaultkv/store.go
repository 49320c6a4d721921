package vaultkv

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"pearpass-host/internal/domain"
)

var (
	errWrongPassphrase = errors.New("vaultkv: wrong passphrase or corrupted entry")
	errCorrupt         = errors.New("vaultkv: corrupt envelope")

	// ErrVaultLocked is returned by Put while no passphrase has been
	// supplied via Unlock. Get does not return this: a locked vault
	// reads back as Missing, same as the source's loose-KV behavior the
	// identity/pairing layers already treat as "fall back to memory".
	ErrVaultLocked = errors.New("vaultkv: locked")
)

type record struct {
	Key      string   `json:"key"`
	Envelope envelope `json:"envelope"`
}

// Store is a passphrase-protected domain.KVStore backed by a single file.
type Store struct {
	path string

	mu         sync.Mutex
	passphrase string
	unlocked   bool
}

var _ domain.KVStore = (*Store)(nil)

// New returns a locked Store rooted at dir/vault.kv. Call Unlock before
// Get/Put will do anything useful; the file itself is created by Init.
func New(dir string) *Store {
	return &Store{path: filepath.Join(dir, "vault.kv")}
}

// Unlock supplies the master passphrase for subsequent Get/Put calls. It
// does not itself validate the passphrase against any existing entry —
// a wrong passphrase simply makes every subsequent Get fail to decrypt.
func (s *Store) Unlock(passphrase string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passphrase = passphrase
	s.unlocked = true
}

// Lock discards the in-memory passphrase.
func (s *Store) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passphrase = ""
	s.unlocked = false
}

// Status reports whether the vault file exists and is initialized.
func (s *Store) Status() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Init creates an empty vault file if one does not already exist. It is
// idempotent: calling it on an already-initialized vault is not an error.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return writeRecords(s.path, nil)
}

// Get decrypts and returns the value stored under key. A locked vault
// reads back as Missing rather than erroring.
func (s *Store) Get(key string) (domain.KVValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unlocked {
		return domain.Missing(), nil
	}

	records, err := readRecords(s.path)
	if err != nil {
		return domain.KVValue{}, err
	}
	for _, r := range records {
		if r.Key != key {
			continue
		}
		pt, err := open(s.passphrase, r.Envelope)
		if err != nil {
			return domain.KVValue{}, err
		}
		return domain.Present(pt), nil
	}
	return domain.Missing(), nil
}

// Put seals value and stores it under key, replacing any prior entry.
func (s *Store) Put(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unlocked {
		return ErrVaultLocked
	}

	records, err := readRecords(s.path)
	if err != nil {
		return err
	}
	env, err := seal(s.passphrase, value)
	if err != nil {
		return err
	}

	replaced := false
	for i := range records {
		if records[i].Key == key {
			records[i].Envelope = env
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record{Key: key, Envelope: env})
	}
	return writeRecords(s.path, records)
}

func readRecords(path string) ([]record, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var records []record
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// writeRecords writes via a temp file then rename so a crash mid-write
// never corrupts the previous contents.
func writeRecords(path string, records []record) error {
	if records == nil {
		records = []record{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
