package fetcher

const defaultName = "fetcher"

// Option configures a Fetcher on construction or extension
type Option func(*options)

type options struct {
	name     string
	expected []int
}

// Expect declares status codes the result type requires a Decoder for.
// Make and Extend fail, listing the missing codes, if the table does not
// handle all of them.
func Expect(codes ...int) Option {
	return func(o *options) {
		o.expected = append(o.expected, codes...)
	}
}

// Named sets the name used for the Fetcher in log data and metrics
func Named(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// TaskOption configures the Task returned by ToTask and Bind
type TaskOption func(*taskOptions)

type taskOptions struct {
	reporter Reporter
}

// WithReporter sets the Reporter that is told the outcome of every execution
func WithReporter(r Reporter) TaskOption {
	return func(o *taskOptions) {
		if r != nil {
			o.reporter = r
		}
	}
}

func newTaskOptions(opts []TaskOption) *taskOptions {
	o := &taskOptions{reporter: nopReporter{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// union returns the distinct codes of a followed by those of b
func union(a, b []int) []int {
	seen := make(map[int]struct{}, len(a)+len(b))
	var out []int
	for _, codes := range [][]int{a, b} {
		for _, c := range codes {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}
