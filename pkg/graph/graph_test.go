package graph

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCycle(t *testing.T, n int) *Graph {
	t.Helper()
	g := NewGraph(n)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%n))
	}
	return g
}

func TestAddEdge(t *testing.T) {
	g := createCycle(t, 4)

	assert.Equal(t, 4, g.NumEdges())
	assert.Equal(t, int64(8), g.TotalDegree())
	for i := 0; i < 4; i++ {
		assert.Equal(t, 2, g.Degree(i), "degree of node %d", i)
	}
	require.NoError(t, g.Validate())
}

func TestAddEdgeSelfLoopAndParallel(t *testing.T) {
	g := NewGraph(3)
	require.NoError(t, g.AddEdge(0, 0))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 1))

	assert.Equal(t, 2, g.Degree(0), "self-loop counts twice")
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, int64(6), g.TotalDegree())
	assert.Equal(t, 3, g.NumEdges())
	require.NoError(t, g.Validate())
}

func TestAddEdgeOutOfRange(t *testing.T) {
	g := NewGraph(2)
	err := g.AddEdge(0, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNodeOutOfRange))

	err = g.AddEdge(-1, 0)
	assert.ErrorIs(t, err, ErrNodeOutOfRange)
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, 0, g.Degree(5), "unknown node has degree 0")
}

func TestGrow(t *testing.T) {
	g := createCycle(t, 3)
	g.Grow(5)

	assert.Equal(t, 5, g.NumNodes)
	assert.Equal(t, 0, g.Degree(4))
	assert.Equal(t, int64(6), g.TotalDegree())
	require.NoError(t, g.Validate())

	g.Grow(2)
	assert.Equal(t, 5, g.NumNodes, "Grow never shrinks")
}

func TestValidateDetectsCorruption(t *testing.T) {
	g := createCycle(t, 4)
	g.Degrees[1] = 7
	assert.Error(t, g.Validate())

	empty := NewGraph(0)
	assert.Error(t, empty.Validate())
}

func TestForEachEdge(t *testing.T) {
	g := createCycle(t, 3)

	var seen []Edge
	g.ForEachEdge(func(u, v int) {
		seen = append(seen, Edge{U: u, V: v})
	})
	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {2, 0}}, seen)
}

func TestReader(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		minNodes  int
		wantNodes int
		wantEdges int
		wantErr   bool
	}{
		{
			name:      "PlainEdgeList",
			input:     "0 1\n1 2\n2 3\n3 0\n",
			wantNodes: 4,
			wantEdges: 4,
		},
		{
			name:      "CommentsAndBlankLines",
			input:     "# header\n% matrix market style\n\n0 1\n\n1 2 0.5\n",
			wantNodes: 3,
			wantEdges: 2,
		},
		{
			name:      "PaddedVertexCount",
			input:     "0 1\n",
			minNodes:  4,
			wantNodes: 4,
			wantEdges: 1,
		},
		{
			name:    "MissingColumn",
			input:   "0 1\n2\n",
			wantErr: true,
		},
		{
			name:    "NotANumber",
			input:   "0 x\n",
			wantErr: true,
		},
		{
			name:    "NegativeID",
			input:   "-1 2\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader()
			r.MinNodes = tt.minNodes

			g, err := r.Read(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNodes, g.NumNodes)
			assert.Equal(t, tt.wantEdges, g.NumEdges())
			assert.NoError(t, g.Validate())
		})
	}
}

func TestReaderLineNumberInError(t *testing.T) {
	_, err := NewReader().Read(strings.NewReader("0 1\n# c\n1 oops\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n1 2\n"), 0644))

	g, err := NewReader().ReadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumNodes)

	_, err = NewReader().ReadFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestToGonum(t *testing.T) {
	g := NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 2))

	wg := g.ToGonum()

	assert.Equal(t, 4, wg.Nodes().Len(), "isolated node 3 is kept")
	w, ok := wg.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2.0, w, "parallel edges become weight")

	w, ok = wg.Weight(1, 2)
	require.True(t, ok)
	assert.Equal(t, 1.0, w)

	assert.False(t, wg.HasEdgeBetween(2, 3))
	assert.Equal(t, 2, wg.Edges().Len(), "self-loop dropped")
}
