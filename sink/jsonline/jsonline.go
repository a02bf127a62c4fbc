// Package jsonline implements a saga1000.Sink that writes one JSON object
// per record to an io.Writer (json.Marshal + fmt.Fprintf("%s\n", raw)).
package jsonline

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jkgomes/saga1000-client/schema"
)

// Sink writes each Record it receives as one line of JSON to W.
type Sink struct {
	W       io.Writer
	timeNow func() time.Time
}

// New creates a Sink writing to w.
func New(w io.Writer) *Sink {
	return &Sink{W: w, timeNow: time.Now}
}

type line struct {
	Time    time.Time      `json:"time"`
	Command byte           `json:"command"`
	Fields  map[string]any `json:"fields"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Receive implements saga1000.Sink.
func (s *Sink) Receive(rec schema.Record) error {
	fields := make(map[string]any, len(rec.Fields))
	var errs map[string]string
	for _, f := range rec.Fields {
		switch {
		case f.Truncated:
			if errs == nil {
				errs = map[string]string{}
			}
			errs[f.Name] = "truncated"
		case f.Err != nil:
			if errs == nil {
				errs = map[string]string{}
			}
			errs[f.Name] = f.Err.Error()
		default:
			fields[f.Name] = f.Value.Any()
		}
	}

	now := time.Now
	if s.timeNow != nil {
		now = s.timeNow
	}
	raw, err := json.Marshal(line{Time: now(), Command: rec.Command, Fields: fields, Errors: errs})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.W, "%s\n", raw)
	return err
}
