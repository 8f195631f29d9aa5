package db

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlobStore is the key-value persistence contract the rest of the system is
// written against. Get returns nil with no error when a key is absent.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

type blobDoc struct {
	ID   string `bson:"_id"`
	Data []byte `bson:"data"`
}

// MongoBlobStore stores each key as one document in a single collection,
// with the payload kept as an opaque byte blob.
type MongoBlobStore struct {
	Collection *mongo.Collection
}

// NewMongoBlobStore returns a blob store backed by the "datasets" collection.
func NewMongoBlobStore(database *mongo.Database) *MongoBlobStore {
	return &MongoBlobStore{Collection: database.Collection("datasets")}
}

// Get retrieves the payload stored under key, or nil when the key is absent.
func (s *MongoBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var doc blobDoc
	err := s.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.Data, nil
}

// Set replaces the payload stored under key, creating it if needed.
func (s *MongoBlobStore) Set(ctx context.Context, key string, data []byte) error {
	if s.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": key}, blobDoc{ID: key, Data: data}, opts)
	return err
}

// Delete removes a single key. Deleting an absent key is not an error.
func (s *MongoBlobStore) Delete(ctx context.Context, key string) error {
	if s.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := s.Collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// Clear removes every key.
func (s *MongoBlobStore) Clear(ctx context.Context) error {
	if s.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	_, err := s.Collection.DeleteMany(ctx, bson.M{})
	return err
}

// MemoryBlobStore is an in-memory BlobStore used by tests and by the field
// simulator's dry-run mode.
type MemoryBlobStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBlobStore returns an empty in-memory blob store.
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{data: make(map[string][]byte)}
}

func (s *MemoryBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryBlobStore) Set(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.data[key] = cp
	return nil
}

func (s *MemoryBlobStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemoryBlobStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string][]byte)
	return nil
}
