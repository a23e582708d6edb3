package mir

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadSnapshot reads a front-end MIR snapshot from a JSON file and builds
// the program indexes.
func LoadSnapshot(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return DecodeSnapshot(f)
}

// DecodeSnapshot decodes a MIR snapshot from r and builds the program
// indexes. Unknown fields are ignored so newer front ends can extend the
// format without breaking older analyzers.
func DecodeSnapshot(r io.Reader) (*Program, error) {
	var p Program
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	p.Init()
	return &p, nil
}
