package storage

import (
	"encoding/json"
	"time"

	"shiftpro_backend/pkg/utils"

	bolt "go.etcd.io/bbolt"
)

// bucketName is the single bucket holding every persisted key.
var bucketName = []byte("shiftpro")

// Adapter is the local persistence substrate: durable key-value get/set/remove
// with JSON-serialized values. It never surfaces storage faults to callers;
// a fault is logged and the operation reports absence or failure instead, so
// the in-memory state keeps working when the local store is unavailable.
type Adapter struct {
	db *bolt.DB
}

// Open opens (or creates) the store file at path. If the file cannot be
// opened the adapter still comes up, detached: every Get returns false and
// every Set/Remove reports failure.
func Open(path string) *Adapter {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		utils.LogError(err, "Local store unavailable, running with in-memory state only")
		return &Adapter{}
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(bucketName)
		return createErr
	})
	if err != nil {
		utils.LogError(err, "Local store bucket init failed, running with in-memory state only")
		_ = db.Close()
		return &Adapter{}
	}
	return &Adapter{db: db}
}

// Close releases the store file. Safe on a detached adapter.
func (a *Adapter) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// Get loads the value stored under key into dest. It returns false when the
// key is absent, the stored value cannot be decoded, or the store is
// unavailable; corruption degrades to absence rather than an error.
func (a *Adapter) Get(key string, dest interface{}) bool {
	if a.db == nil {
		return false
	}
	var raw []byte
	err := a.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		utils.LogError(err, "Storage get failed for key "+key)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		utils.LogError(err, "Storage value corrupt for key "+key)
		return false
	}
	return true
}

// Set serializes value as JSON and stores it under key. It reports success;
// a failed write is logged and absorbed.
func (a *Adapter) Set(key string, value interface{}) bool {
	if a.db == nil {
		return false
	}
	raw, err := json.Marshal(value)
	if err != nil {
		utils.LogError(err, "Storage serialize failed for key "+key)
		return false
	}
	err = a.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), raw)
	})
	if err != nil {
		utils.LogError(err, "Storage set failed for key "+key)
		return false
	}
	return true
}

// Remove deletes the value stored under key. Removing an absent key succeeds.
func (a *Adapter) Remove(key string) bool {
	if a.db == nil {
		return false
	}
	err := a.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		utils.LogError(err, "Storage remove failed for key "+key)
		return false
	}
	return true
}
