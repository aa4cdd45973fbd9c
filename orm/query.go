package orm

import "github.com/covault/covault"

// ConsumeIterator will read all remaining data into an
// array and close the iterator.
func ConsumeIterator(itr covault.Iterator) []covault.Model {
	defer itr.Close()

	res := []covault.Model{}
	for ; itr.Valid(); itr.Next() {
		mod := covault.Model{
			Key:   itr.Key(),
			Value: itr.Value(),
		}
		res = append(res, mod)
	}
	return res
}

// queryPrefix returns all models with the given key prefix, in
// ascending key order.
func queryPrefix(db covault.ReadOnlyKVStore, prefix []byte) []covault.Model {
	start, end := prefixRange(prefix)
	return ConsumeIterator(db.Iterator(start, end))
}

// prefixRange turns a prefix into (start, end) to create
// an iterator over the whole domain with that prefix.
//
// In the case of a prefix with all 0xff bytes, the end is nil
// (iterate to the end of the key space).
func prefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}

	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return prefix, end[: i+1 : i+1]
		}
	}
	return prefix, nil
}
