package profiledb

// Database is the nested map of one species:
// beam energy key → kind → dimension key → record.
type Database map[string]map[string]map[string]Record

// Get returns the record under k, or the ErrProfileNotFound error naming
// the requested kind and dimension.
func (db Database) Get(k Key) (Record, error) {
	kinds, ok := db[k.EnergyKey()]
	if !ok {
		return Record{}, k.notFound()
	}
	dims, ok := kinds[k.Kind]
	if !ok {
		return Record{}, k.notFound()
	}
	r, ok := dims[k.DimensionKey()]
	if !ok {
		return Record{}, k.notFound()
	}

	return r, nil
}

// Put stores r under k, creating missing levels and leaving siblings alone.
func (db Database) Put(k Key, r Record) {
	kinds, ok := db[k.EnergyKey()]
	if !ok {
		kinds = make(map[string]map[string]Record)
		db[k.EnergyKey()] = kinds
	}
	dims, ok := kinds[k.Kind]
	if !ok {
		dims = make(map[string]Record)
		kinds[k.Kind] = dims
	}
	dims[k.DimensionKey()] = r
}

// Len counts the stored leaves.
func (db Database) Len() int {
	n := 0
	for _, kinds := range db {
		for _, dims := range kinds {
			n += len(dims)
		}
	}

	return n
}
