package storage

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryClient keeps buckets in process memory.
type MemoryClient struct {
	mu      sync.RWMutex
	buckets map[string]map[string]memoryObject
	denied  map[string]bool
}

type memoryObject struct {
	data    []byte
	updated time.Time
}

// NewMemoryClient creates an empty in-memory client.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		buckets: make(map[string]map[string]memoryObject),
		denied:  make(map[string]bool),
	}
}

// MakeBucket creates an empty bucket if it does not exist yet.
func (m *MemoryClient) MakeBucket(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.buckets[name]; !ok {
		m.buckets[name] = make(map[string]memoryObject)
	}
}

// PutObject stores a copy of data, creating the bucket when needed.
func (m *MemoryClient) PutObject(bucket, key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	objects, ok := m.buckets[bucket]
	if !ok {
		objects = make(map[string]memoryObject)
		m.buckets[bucket] = objects
	}
	objects[key] = memoryObject{data: append([]byte(nil), data...), updated: time.Now()}
}

// DenyBucket makes every access to bucket fail with ErrAccessDenied.
func (m *MemoryClient) DenyBucket(bucket string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied[bucket] = true
}

func (m *MemoryClient) Bucket(_ context.Context, name string) (*BucketHandle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.denied[name] {
		return nil, fmt.Errorf("%w: bucket %s", ErrAccessDenied, name)
	}
	if _, ok := m.buckets[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, name)
	}
	return &BucketHandle{Name: name}, nil
}

func (m *MemoryClient) Object(_ context.Context, bucket *BucketHandle, key string) (*ObjectHandle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.denied[bucket.Name] {
		return nil, fmt.Errorf("%w: bucket %s", ErrAccessDenied, bucket.Name)
	}
	objects, ok := m.buckets[bucket.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket.Name)
	}
	obj, ok := objects[key]
	if !ok {
		return nil, nil
	}
	return &ObjectHandle{
		Bucket:  bucket.Name,
		Key:     key,
		Size:    int64(len(obj.data)),
		Updated: obj.updated,
	}, nil
}

func (m *MemoryClient) ReadObject(_ context.Context, object *ObjectHandle) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.buckets[object.Bucket][object.Key]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrObjectNotFound, object.Bucket, object.Key)
	}
	return append([]byte(nil), obj.data...), nil
}
