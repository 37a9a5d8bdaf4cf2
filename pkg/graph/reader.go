package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Reader loads edge-list files. Each non-comment line holds "u v" with
// 0-based vertex ids; further columns are ignored.
type Reader struct {
	// MinNodes pads the vertex count for isolated trailing vertices
	MinNodes int
}

func NewReader() *Reader {
	return &Reader{}
}

// ReadFromFile reads an edge list from disk
func (r *Reader) ReadFromFile(filename string) (*Graph, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open graph file %s: %w", filename, err)
	}
	defer file.Close()

	g, err := r.Read(file)
	if err != nil {
		return nil, fmt.Errorf("graph file %s: %w", filename, err)
	}
	return g, nil
}

// Read parses an edge list. The vertex count is the largest id plus one,
// or MinNodes when that is larger.
func (r *Reader) Read(in io.Reader) (*Graph, error) {
	var edges []Edge
	maxNode := -1

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %d: expected two vertex ids, got %q", lineNum, line)
		}

		src, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid vertex id %q: %w", lineNum, parts[0], err)
		}
		dst, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid vertex id %q: %w", lineNum, parts[1], err)
		}
		if src < 0 || dst < 0 {
			return nil, fmt.Errorf("line %d: negative vertex id in %q", lineNum, line)
		}

		edges = append(edges, Edge{U: src, V: dst})
		if src > maxNode {
			maxNode = src
		}
		if dst > maxNode {
			maxNode = dst
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	numNodes := maxNode + 1
	if r.MinNodes > numNodes {
		numNodes = r.MinNodes
	}

	g := NewGraph(numNodes)
	g.Edges = make([]Edge, 0, len(edges))
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}

	return g, nil
}
