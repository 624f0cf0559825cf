// Package edgelist reads signed weighted undirected graphs from CSV.
//
// Each record is "source,target[,weight]". The weight defaults to 1, a
// negative weight is a distrust link. A record with a single field declares
// a node without links. Lines starting with '#' are comments and a leading
// "source,target,weight" header is skipped.
package edgelist

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/relevant-community/signedrank/srwr"
)

// Load reads a graph from the CSV file at path.
func Load(path string) (*srwr.WeightedGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open edge list")
	}
	defer f.Close()
	graph, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load %s", path)
	}
	return graph, nil
}

// Read reads a graph from CSV records.
func Read(r io.Reader) (*srwr.WeightedGraph, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	graph := srwr.NewWeightedGraph()
	count := 0
	fields, err := reader.Read()
	for ; err == nil; fields, err = reader.Read() {
		count++
		if count == 1 && isHeader(fields) {
			continue
		}
		if err := addRecord(graph, fields); err != nil {
			return nil, errors.Wrapf(err, "cannot parse edge record #%d", count)
		}
	}
	if err != io.EOF {
		return nil, errors.Wrapf(err, "cannot read edge record #%d", count+1)
	}
	return graph, nil
}

func addRecord(graph *srwr.WeightedGraph, fields []string) error {
	switch len(fields) {
	case 1:
		id, err := parseID(fields[0])
		if err != nil {
			return err
		}
		graph.AddNode(id)
		return nil
	case 2, 3:
	default:
		return errors.Errorf("expected 1 to 3 fields, got %d", len(fields))
	}

	source, err := parseID(fields[0])
	if err != nil {
		return errors.Wrap(err, "invalid source")
	}
	target, err := parseID(fields[1])
	if err != nil {
		return errors.Wrap(err, "invalid target")
	}
	weight := 1.0
	if len(fields) == 3 {
		if weight, err = ParseWeight(fields[2]); err != nil {
			return errors.Wrapf(err, "invalid weight %#v", fields[2])
		}
	}
	graph.Link(source, target, weight)
	return nil
}

func parseID(field string) (string, error) {
	id := strings.TrimSpace(field)
	if id == "" {
		return "", errors.New("empty node id")
	}
	return id, nil
}

// ParseWeight parses a finite link weight.
func ParseWeight(field string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, errors.Errorf("weight %v is not finite", w)
	}
	return w, nil
}

func isHeader(fields []string) bool {
	return len(fields) >= 2 &&
		strings.EqualFold(strings.TrimSpace(fields[0]), "source") &&
		strings.EqualFold(strings.TrimSpace(fields[1]), "target")
}
