package fetcher

// Fetcher ties a Resource to the Decoders that turn its responses into an R.
// A Fetcher is immutable once constructed: Extend returns a new Fetcher and
// leaves the original untouched, so a single Fetcher can be executed from any
// number of goroutines.
type Fetcher[R any] struct {
	name     string
	resource Resource
	table    Table[R]
	fallback Decoder[R]
	expected []int
}

// Make builds a Fetcher for resource. Responses whose status code is in table
// are decoded by the matching entry, any other status by fallback.
//
// The table is copied, so changing it afterwards has no effect on the
// Fetcher. Make fails with a construction error if fallback or any table
// entry is nil, or if a code declared with Expect has no entry.
func Make[R any](resource Resource, table Table[R], fallback Decoder[R], opts ...Option) (*Fetcher[R], error) {
	o := newOptions(opts)

	f := &Fetcher[R]{
		name:     o.name,
		resource: resource.clone(),
		table:    table.clone(),
		fallback: fallback,
		expected: union(nil, o.expected),
	}
	if f.name == "" {
		f.name = defaultName
	}

	if err := f.validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// MustMake is like Make but panics on a construction error. It is intended
// for package level Fetchers whose tables are fixed at compile time.
func MustMake[R any](resource Resource, table Table[R], fallback Decoder[R], opts ...Option) *Fetcher[R] {
	f, err := Make(resource, table, fallback, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Extend returns a new Fetcher whose table is the union of f's table and
// additional. When both handle a status code the entry from additional wins,
// which makes Extend the way to deliberately override a Decoder.
//
// Codes declared with Expect on f still apply; opts may declare more and may
// rename the result. The resource and fallback are unchanged.
func (f *Fetcher[R]) Extend(additional Table[R], opts ...Option) (*Fetcher[R], error) {
	o := newOptions(opts)

	ext := &Fetcher[R]{
		name:     f.name,
		resource: f.resource,
		table:    f.table.overlay(additional),
		fallback: f.fallback,
		expected: union(f.expected, o.expected),
	}
	if o.name != "" {
		ext.name = o.name
	}

	if err := ext.validate(); err != nil {
		return nil, err
	}

	return ext, nil
}

// Extension is the curried form of Extend, for building pipelines of
// extensions that are applied later
func Extension[R any](additional Table[R], opts ...Option) func(*Fetcher[R]) (*Fetcher[R], error) {
	return func(f *Fetcher[R]) (*Fetcher[R], error) {
		return f.Extend(additional, opts...)
	}
}

// Name returns the name used for f in log data and metrics
func (f *Fetcher[R]) Name() string {
	return f.name
}

// Resource returns a copy of the resource f requests
func (f *Fetcher[R]) Resource() Resource {
	return f.resource.clone()
}

// Codes returns the status codes f has a Decoder for, in ascending order
func (f *Fetcher[R]) Codes() []int {
	return f.table.Codes()
}

// Handles reports whether code is decoded by a table entry rather than
// the fallback
func (f *Fetcher[R]) Handles(code int) bool {
	_, ok := f.table[code]
	return ok
}

// decoder returns the Decoder for code and whether it came from the table
func (f *Fetcher[R]) decoder(code int) (Decoder[R], bool) {
	if d, ok := f.table[code]; ok {
		return d, true
	}
	return f.fallback, false
}

func (f *Fetcher[R]) validate() error {
	if f.fallback == nil {
		return constructionError(f.name, "fallback decoder is nil", nil)
	}

	if codes := f.table.nilEntries(); len(codes) > 0 {
		return constructionError(f.name, "nil decoders for status codes", codes)
	}

	if codes := f.table.missing(f.expected); len(codes) > 0 {
		return constructionError(f.name, "no decoders for expected status codes", codes)
	}

	return nil
}
