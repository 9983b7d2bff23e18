package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// UpdateResult reports how many documents an update touched.
type UpdateResult struct {
	Matched int
}

// DeleteResult reports how many documents a delete removed.
type DeleteResult struct {
	Deleted int
}

// Collection is a named set of documents inside a Store.
type Collection struct {
	store *Store
	name  string
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

func (c *Collection) prefix() []byte {
	return []byte(c.name + ":")
}

func (c *Collection) key(id string) []byte {
	return []byte(c.name + ":" + id)
}

// InsertOne stores doc under a freshly generated identifier. Any _id already
// present on doc is replaced.
func (c *Collection) InsertOne(doc any) (uuid.UUID, error) {
	encoded, err := encodeDocument(doc)
	if err != nil {
		return uuid.Nil, err
	}

	// v7 identifiers sort by creation time, so key order is insertion order.
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate identifier: %w", err)
	}
	encoded[IDField] = id.String()

	data, err := json.Marshal(encoded)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	err = c.store.update(func(txn *badger.Txn) error {
		return txn.Set(c.key(id.String()), data)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Find calls fn for every document matching filter, in insertion order, after
// applying the projection.
func (c *Collection) Find(filter Filter, proj Projection, fn func(Document) error) error {
	filter, err := filter.normalize()
	if err != nil {
		return err
	}
	return c.store.view(func(txn *badger.Txn) error {
		return c.scan(txn, filter, func(_ []byte, doc Document) (bool, error) {
			return true, fn(proj.apply(doc))
		})
	})
}

// FindAll decodes every document matching filter into a T.
func FindAll[T any](c *Collection, filter Filter, proj Projection) ([]T, error) {
	results := []T{}
	err := c.Find(filter, proj, func(doc Document) error {
		var v T
		if err := doc.Decode(&v); err != nil {
			return err
		}
		results = append(results, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// FindOne decodes the first document matching filter into dest. It returns
// ErrNoDocuments when nothing matches.
func (c *Collection) FindOne(filter Filter, proj Projection, dest any) error {
	filter, err := filter.normalize()
	if err != nil {
		return err
	}

	var found Document
	err = c.store.view(func(txn *badger.Txn) error {
		_, doc, err := c.first(txn, filter)
		found = doc
		return err
	})
	if err != nil {
		return err
	}
	if found == nil {
		return ErrNoDocuments
	}
	return proj.apply(found).Decode(dest)
}

// UpdateOne applies set to the first document matching filter. Fields not
// named in set are left untouched. Matching nothing is not an error.
func (c *Collection) UpdateOne(filter Filter, set map[string]any) (UpdateResult, error) {
	if _, ok := set[IDField]; ok {
		return UpdateResult{}, errors.New("_id is immutable")
	}
	filter, err := filter.normalize()
	if err != nil {
		return UpdateResult{}, err
	}
	fields, err := encodeDocument(set)
	if err != nil {
		return UpdateResult{}, err
	}

	var result UpdateResult
	err = c.store.update(func(txn *badger.Txn) error {
		key, doc, err := c.first(txn, filter)
		if err != nil || doc == nil {
			return err
		}
		for path, value := range fields {
			setPath(doc, path, value)
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		result.Matched = 1
		return txn.Set(key, data)
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return result, nil
}

// DeleteOne removes the first document matching filter. Matching nothing is
// not an error.
func (c *Collection) DeleteOne(filter Filter) (DeleteResult, error) {
	filter, err := filter.normalize()
	if err != nil {
		return DeleteResult{}, err
	}

	var result DeleteResult
	err = c.store.update(func(txn *badger.Txn) error {
		key, doc, err := c.first(txn, filter)
		if err != nil || doc == nil {
			return err
		}
		result.Deleted = 1
		return txn.Delete(key)
	})
	if err != nil {
		return DeleteResult{}, err
	}
	return result, nil
}

// first returns the key and body of the first match, or a nil document.
func (c *Collection) first(txn *badger.Txn, filter Filter) ([]byte, Document, error) {
	if id, ok := filter.idOnly(); ok {
		key := c.key(id)
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil, nil
		}
		if err != nil {
			return nil, nil, err
		}
		var doc Document
		err = item.Value(func(val []byte) error {
			doc, err = decodeDocument(val)
			return err
		})
		return key, doc, err
	}

	var (
		foundKey []byte
		found    Document
	)
	err := c.scan(txn, filter, func(key []byte, doc Document) (bool, error) {
		foundKey, found = key, doc
		return false, nil
	})
	return foundKey, found, err
}

// scan walks the collection in key order and calls fn for each match until
// fn returns false.
func (c *Collection) scan(txn *badger.Txn, filter Filter, fn func(key []byte, doc Document) (bool, error)) error {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	prefix := c.prefix()
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		var doc Document
		err := item.Value(func(val []byte) error {
			var err error
			doc, err = decodeDocument(val)
			return err
		})
		if err != nil {
			return err
		}
		if !filter.matches(doc) {
			continue
		}
		more, err := fn(item.KeyCopy(nil), doc)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	return nil
}
