package query

// Strategy is how a successful mutation reconciles the cache. Every mutation
// declares one; the divergence between invalidation and optimistic patching
// is explicit rather than ad hoc.
type Strategy interface {
	Reconcile(c *Cache)
}

// InvalidateKinds marks every entry of the listed kinds stale. This is the
// default strategy: the next dependent read fetches the server's truth.
type InvalidateKinds []Kind

// Reconcile implements Strategy.
func (s InvalidateKinds) Reconcile(c *Cache) {
	c.Invalidate(s...)
}

// InvalidateEntry marks entries of one kind scoped to one identifier stale.
type InvalidateEntry struct {
	Kind Kind
	ID   int64
}

// Reconcile implements Strategy.
func (s InvalidateEntry) Reconcile(c *Cache) {
	c.InvalidateID(s.Kind, s.ID)
}

// Optimistic patches one cached entry in place, predicting the server's
// state instead of refetching. The prediction holds only until the next full
// refetch of the key, which reconciles or discards it.
type Optimistic struct {
	Key   Key
	Patch func(val any) any
}

// Reconcile implements Strategy.
func (s Optimistic) Reconcile(c *Cache) {
	c.Patch(s.Key, s.Patch)
}

// Strategies combines several strategies into one.
type Strategies []Strategy

// Reconcile implements Strategy.
func (s Strategies) Reconcile(c *Cache) {
	for _, st := range s {
		st.Reconcile(c)
	}
}
