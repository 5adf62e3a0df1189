package model

// Config is a parsed batch: captures to read, requests to aggregate and rules
// to verify.
type Config struct {
	Reports    []Path
	Requests   []Request
	Rules      []Rule
	ClassIndex Path
	Threads    int
}
