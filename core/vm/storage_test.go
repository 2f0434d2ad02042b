// Copyright 2016 The go-core Authors
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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapStorageDefaultsToZero(t *testing.T) {
	s := NewMapStorage()
	v, err := s.Load(WordFromUint64(1))
	require.NoError(t, err)
	require.True(t, v.IsZero())
}

func TestMapStorageStoreLoad(t *testing.T) {
	s := NewMapStorage()
	require.NoError(t, s.Store(WordFromUint64(1), WordFromUint64(99)))
	v, err := s.Load(WordFromUint64(1))
	require.NoError(t, err)
	require.Equal(t, WordFromUint64(99), v)
}

func TestFileStorageDefaultsToZero(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "storage.json"))
	v, err := s.Load(WordFromUint64(1))
	require.NoError(t, err)
	require.True(t, v.IsZero())
}

func TestFileStoragePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")

	s1 := NewFileStorage(path)
	require.NoError(t, s1.Store(WordFromUint64(5), WordFromUint64(500)))

	s2 := NewFileStorage(path)
	v, err := s2.Load(WordFromUint64(5))
	require.NoError(t, err)
	require.Equal(t, WordFromUint64(500), v)
}

func TestFileStorageCacheServesRepeatedLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	s := NewFileStorage(path)
	require.NoError(t, s.Store(WordFromUint64(1), WordFromUint64(2)))

	v1, err := s.Load(WordFromUint64(1))
	require.NoError(t, err)
	v2, err := s.Load(WordFromUint64(1))
	require.NoError(t, err)
	require.Equal(t, v1, v2)
}
