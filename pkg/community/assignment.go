package community

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	ErrAssignmentUnreadable = errors.New("community assignment file unreadable")
	ErrEmptyAssignment      = errors.New("community assignment is empty")
	ErrAssignmentSize       = errors.New("community assignment does not cover the graph")
)

// Assignment maps each original node to a 0-based community index
type Assignment struct {
	N2C            []int `json:"n2c"`
	NumCommunities int   `json:"num_communities"`
}

// ReadAssignment reads a community file holding one 1-based label per node
func ReadAssignment(filename string) (*Assignment, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssignmentUnreadable, filename, err)
	}
	defer file.Close()

	a, err := ParseAssignment(file)
	if err != nil {
		return nil, fmt.Errorf("community file %s: %w", filename, err)
	}
	return a, nil
}

// ParseAssignment reads whitespace-separated 1-based labels in node order.
// Labels are shifted to 0-based and the community count is max label + 1.
func ParseAssignment(r io.Reader) (*Assignment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	n2c := make([]int, 0)
	maxComm := 0
	for scanner.Scan() {
		token := scanner.Text()
		label, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("label %d: invalid community id %q: %w", len(n2c)+1, token, err)
		}
		if label < 1 {
			return nil, fmt.Errorf("label %d: community ids start at 1, got %d", len(n2c)+1, label)
		}

		comm := label - 1
		n2c = append(n2c, comm)
		if comm > maxComm {
			maxComm = comm
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssignmentUnreadable, err)
	}
	if len(n2c) == 0 {
		return nil, ErrEmptyAssignment
	}

	return &Assignment{N2C: n2c, NumCommunities: maxComm + 1}, nil
}

// NumNodes returns the number of labelled nodes
func (a *Assignment) NumNodes() int {
	return len(a.N2C)
}

// Validate checks that the assignment labels exactly numNodes nodes with
// community indices in range
func (a *Assignment) Validate(numNodes int) error {
	if len(a.N2C) != numNodes {
		return fmt.Errorf("%w: %d labels for %d vertices", ErrAssignmentSize, len(a.N2C), numNodes)
	}
	for node, c := range a.N2C {
		if c < 0 || c >= a.NumCommunities {
			return fmt.Errorf("node %d: community %d outside [0, %d)", node, c, a.NumCommunities)
		}
	}
	return nil
}
