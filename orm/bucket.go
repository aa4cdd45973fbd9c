/*
Package orm provides an easy to use db wrapper.

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* It has a primary index (which may be composite).
* Easy queries for one and iteration by prefix.
*/
package orm

import (
	"fmt"
	"regexp"

	"github.com/covault/covault"
	"github.com/covault/covault/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a generic holder that stores data as well
// as references to sequences.
//
// This is a generic building block that should generally
// be embedded in a type-safe wrapper to ensure all data
// is the same type.
// Bucket is a prefixed subspace of the DB.
// proto defines the default Model, all elements of this type.
type Bucket struct {
	name   string
	prefix []byte
	proto  Cloneable
}

var _ covault.QueryHandler = Bucket{}

// NewBucket creates a bucket to store data.
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}

	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// Register registers this Bucket on the QueryRouter.
// You can define a name here for queries, which is
// different than the bucket name used to prefix the data.
func (b Bucket) Register(name string, r covault.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query handles queries from the QueryRouter.
func (b Bucket) Query(db covault.ReadOnlyKVStore, mod string, data []byte) ([]covault.Model, error) {
	switch mod {
	case covault.KeyQueryMod:
		key := b.DBKey(data)
		value := db.Get(key)
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		res := []covault.Model{{Key: key, Value: value}}
		return res, nil
	case covault.PrefixQueryMod:
		prefix := b.DBKey(data)
		return queryPrefix(db, prefix), nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod: %q", mod)
	}
}

// DBKey is the full key we store in the db, including prefix.
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Get one element.
func (b Bucket) Get(db covault.ReadOnlyKVStore, key []byte) (Object, error) {
	dbkey := b.DBKey(key)
	bz := db.Get(dbkey)
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Parse takes a key and value data (covault.Model) and
// reconstructs the data this Bucket would return.
//
// Used internally as part of Get.
// It is exposed mainly as a test helper, but can work for
// any code that wants to parse.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(value); err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	obj.SetKey(key)
	return obj, nil
}

// Save will write a model, it must be of the same type as proto.
func (b Bucket) Save(db covault.KVStore, model Object) error {
	if err := model.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}

	bz, err := model.Value().Marshal()
	if err != nil {
		return err
	}
	db.Set(b.DBKey(model.Key()), bz)
	return nil
}

// Delete will remove the value at a key.
func (b Bucket) Delete(db covault.KVStore, key []byte) error {
	dbkey := b.DBKey(key)
	db.Delete(dbkey)
	return nil
}

// Sequence returns a Sequence by name.
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}
