// Package file implements the store contract on top of plain JSON
// files, one per collection, under a single root directory. It is the
// local, per-installation equivalent of the browser's structured store:
// durable across restarts, schema-less, auto-increment ids.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/clinicore/admin-api/internal/store"
	apperrors "github.com/clinicore/admin-api/pkg/errors"
)

const (
	storeName    = "medical_clinic"
	storeVersion = 1
	manifestFile = "manifest.json"
)

type manifest struct {
	Name        string   `json:"name"`
	Version     int      `json:"version"`
	Collections []string `json:"collections"`
}

type collectionData struct {
	Seq     int64          `json:"seq"`
	Records []store.Record `json:"records"`
}

// Store is a file-backed store.Driver. A single mutex serializes all
// operations; the driver never runs requests in true parallel.
type Store struct {
	dir         string
	collections []string

	mu     sync.Mutex
	opened bool
}

func New(dir string, collections []string) *Store {
	return &Store{dir: dir, collections: collections}
}

// Open creates the root directory, the manifest and one empty file per
// missing collection. Existing collection files are left untouched, so
// repeated opens never destroy data.
func (s *Store) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return apperrors.NewStoreUnavailable(err)
	}

	m := manifest{Name: storeName, Version: storeVersion, Collections: s.collections}
	path := filepath.Join(s.dir, manifestFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.writeJSON(path, m); err != nil {
			return apperrors.NewStoreUnavailable(err)
		}
	} else if err != nil {
		return apperrors.NewStoreUnavailable(err)
	}

	for _, name := range s.collections {
		p := s.collectionPath(name)
		if _, err := os.Stat(p); os.IsNotExist(err) {
			if err := s.writeJSON(p, collectionData{Records: []store.Record{}}); err != nil {
				return apperrors.NewStoreUnavailable(err)
			}
		} else if err != nil {
			return apperrors.NewStoreUnavailable(err)
		}
	}

	s.opened = true
	return nil
}

func (s *Store) ListAll(ctx context.Context, collection string) ([]store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readCollection(collection)
	if err != nil {
		return nil, err
	}
	out := make([]store.Record, 0, len(data.Records))
	for _, rec := range data.Records {
		out = append(out, copyRecord(rec))
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, collection string, id int64) (store.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readCollection(collection)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(data.Records, id); idx >= 0 {
		return copyRecord(data.Records[idx]), nil
	}
	return nil, apperrors.NewNotFound("record", fmt.Errorf("%s/%d", collection, id))
}

// Insert assigns the next sequence value unless the caller supplied an
// id. A supplied id that already exists fails with DuplicateKey; a
// supplied id beyond the sequence advances it, so generated ids stay
// monotonic and are never reused.
func (s *Store) Insert(ctx context.Context, collection string, rec store.Record) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readCollection(collection)
	if err != nil {
		return 0, err
	}

	stored := copyRecord(rec)
	id, supplied := store.IDOf(stored)
	if supplied {
		if indexOf(data.Records, id) >= 0 {
			return 0, apperrors.NewDuplicateKey(collection, id)
		}
		if id > data.Seq {
			data.Seq = id
		}
	} else {
		data.Seq++
		id = data.Seq
	}
	stored["id"] = id

	data.Records = append(data.Records, stored)
	if err := s.writeCollection(collection, data); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) Merge(ctx context.Context, collection string, id int64, partial store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readCollection(collection)
	if err != nil {
		return err
	}
	idx := indexOf(data.Records, id)
	if idx < 0 {
		return apperrors.NewNotFound("record", fmt.Errorf("%s/%d", collection, id))
	}
	for k, v := range partial {
		if k == "id" {
			continue
		}
		data.Records[idx][k] = v
	}
	return s.writeCollection(collection, data)
}

func (s *Store) Remove(ctx context.Context, collection string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.readCollection(collection)
	if err != nil {
		return err
	}
	idx := indexOf(data.Records, id)
	if idx < 0 {
		// Removing an absent id is a no-op success.
		return nil
	}
	data.Records = append(data.Records[:idx], data.Records[idx+1:]...)
	return s.writeCollection(collection, data)
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) collectionPath(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) readCollection(name string) (*collectionData, error) {
	buf, err := os.ReadFile(s.collectionPath(name))
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	var data collectionData
	if err := json.Unmarshal(buf, &data); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if data.Records == nil {
		data.Records = []store.Record{}
	}
	return &data, nil
}

func (s *Store) writeCollection(name string, data *collectionData) error {
	if err := s.writeJSON(s.collectionPath(name), data); err != nil {
		return apperrors.NewStoreUnavailable(err)
	}
	return nil
}

// writeJSON writes to a temp file and renames it into place, so a crash
// mid-write never corrupts a collection.
func (s *Store) writeJSON(path string, v interface{}) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func indexOf(recs []store.Record, id int64) int {
	for i, rec := range recs {
		if recID, ok := store.IDOf(rec); ok && recID == id {
			return i
		}
	}
	return -1
}

func copyRecord(rec store.Record) store.Record {
	out := make(store.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
