package community

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// WriteMembership writes one line per community with its members sorted
// ascending as 1-based node ids. Line k describes community k, so empty
// communities produce empty lines.
func WriteMembership(w io.Writer, communities []Community) error {
	writer := bufio.NewWriter(w)

	for _, comm := range communities {
		members := make([]int, len(comm.Members))
		copy(members, comm.Members)
		sort.Ints(members)

		for i, node := range members {
			if i > 0 {
				writer.WriteByte(' ')
			}
			writer.WriteString(strconv.Itoa(node + 1))
		}
		writer.WriteByte('\n')
	}

	return writer.Flush()
}

// WriteMembershipFile writes the membership listing to path
func WriteMembershipFile(path string, communities []Community) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create membership file: %w", err)
	}
	defer file.Close()

	if err := WriteMembership(file, communities); err != nil {
		return fmt.Errorf("failed to write membership file: %w", err)
	}
	return file.Close()
}
