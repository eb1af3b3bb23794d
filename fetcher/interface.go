package fetcher

//go:generate moq -out mock/reporter.go -pkg mock . Reporter

// Reporter receives the outcome of every executed fetch. Implementations must
// be safe for concurrent use.
type Reporter interface {
	ReportMatched(name string, code int)
	ReportFallback(name string, code int)
	ReportDecodeError(name string, code int)
	ReportTransportError(name string)
}

// coder is an interface that allows you to
// extract a http status code from an error (or other object)
type coder interface {
	Code() int
}

// dataLogger is an interface that allows you to
// extract logData from an error (or other object)
type dataLogger interface {
	LogData() map[string]interface{}
}

type kinder interface {
	Kind() Kind
}

type nopReporter struct{}

func (nopReporter) ReportMatched(string, int)     {}
func (nopReporter) ReportFallback(string, int)    {}
func (nopReporter) ReportDecodeError(string, int) {}
func (nopReporter) ReportTransportError(string)   {}
