// Package aggregate implements the gather/reduce step of spec.md §4.6:
// a wire codec each rank uses to hand its local results across the
// worker-group boundary, and the rank-0-only combine step that merges
// them under the global maximum.
//
// Grounded on xtaci-kcptun/std/comp.go's snappy.NewBufferedWriter/
// snappy.NewReader pairing for the codec, and spec.md §4.6 for Combine.
package aggregate

import (
	"bytes"
	"encoding/gob"

	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/frankkopp/aggqueens/internal/board"
)

// RankResult is what crosses the rank boundary: one worker's local
// search outcome (spec.md §4.6's "Inputs from every rank r").
type RankResult struct {
	Rank      int
	MaxQueens int
	Solutions []board.Board
}

// Encode serializes a RankResult with gob and compresses it with
// snappy, giving the gather step a genuine wire format instead of
// passing the struct by pointer between goroutines.
func Encode(r RankResult) ([]byte, error) {
	var buf bytes.Buffer
	w := snappy.NewBufferedWriter(&buf)
	if err := gob.NewEncoder(w).Encode(r); err != nil {
		return nil, errors.Wrap(err, "aggregate: encode rank result")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "aggregate: flush snappy writer")
	}
	return buf.Bytes(), nil
}

// Decode is the inverse of Encode.
func Decode(data []byte) (RankResult, error) {
	var r RankResult
	reader := snappy.NewReader(bytes.NewReader(data))
	if err := gob.NewDecoder(reader).Decode(&r); err != nil {
		return r, errors.Wrap(err, "aggregate: decode rank result")
	}
	return r, nil
}
