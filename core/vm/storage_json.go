// Copyright 2016 by the Authors
// This file is part of the go-core library.
//
// The go-core library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-core library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-core library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/VictoriaMetrics/fastcache"
)

// FileStorage is the JSON-file-backed Storage permitted by spec.md §6: a
// flat file keyed by the hex string of the Word key, holding the hex
// string of the Word value. Unlike the original source's storage.rs, the
// path is supplied by the caller rather than hardcoded (spec.md §9's
// "global state" note), and the whole file is read/written on every call
// as original_source/src/storage.rs does, fronted by a small in-memory
// cache so repeated SLOADs of the same key within a call don't pay for a
// decode.
type FileStorage struct {
	path  string
	cache *fastcache.Cache
}

// storageFile is the on-disk shape: key hex string -> value hex string.
type storageFile struct {
	KeyPairs map[string]string `json:"key_pairs"`
}

// NewFileStorage opens (but does not yet read) a JSON file storage backend
// rooted at path. The file is created lazily on the first Store.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{
		path:  path,
		cache: fastcache.New(1 << 20), // 1MiB front cache, plenty for toy contracts
	}
}

func (s *FileStorage) load() (*storageFile, error) {
	contents, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &storageFile{KeyPairs: map[string]string{}}, nil
		}
		return nil, err
	}
	var f storageFile
	if err := json.Unmarshal(contents, &f); err != nil {
		return nil, err
	}
	if f.KeyPairs == nil {
		f.KeyPairs = map[string]string{}
	}
	return &f, nil
}

func (s *FileStorage) save(f *storageFile) error {
	contents, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, contents, 0o644)
}

// Load implements Storage.Load, consulting the cache before the file.
func (s *FileStorage) Load(key Word) (Word, error) {
	keyBytes := key.Bytes()
	if cached, ok := s.cache.HasGet(nil, keyBytes); ok {
		return WordFromBeBytes(cached), nil
	}
	f, err := s.load()
	if err != nil {
		return Word{}, &ErrStorageError{Err: err}
	}
	str, ok := f.KeyPairs[keyHex(key)]
	if !ok {
		return ZeroWord(), nil
	}
	decoded, err := hex.DecodeString(str)
	if err != nil {
		return Word{}, &ErrStorageError{Err: err}
	}
	value := WordFromBeBytes(decoded)
	s.cache.Set(keyBytes, value.Bytes())
	return value, nil
}

// Store implements Storage.Store, writing through to the file and
// refreshing the cache.
func (s *FileStorage) Store(key, value Word) error {
	f, err := s.load()
	if err != nil {
		return &ErrStorageError{Err: err}
	}
	f.KeyPairs[keyHex(key)] = hex.EncodeToString(value.Bytes())
	if err := s.save(f); err != nil {
		return &ErrStorageError{Err: err}
	}
	s.cache.Set(key.Bytes(), value.Bytes())
	return nil
}

func keyHex(w Word) string {
	return hex.EncodeToString(w.Bytes())
}
