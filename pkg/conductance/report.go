package conductance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gilchrisn/graph-conductance/pkg/community"
)

// DefaultPrecision matches default iostream float formatting
const DefaultPrecision = 6

// OutputWriter interface for report generation
type OutputWriter interface {
	WriteReport(result *Result, path string) error
	WriteMembership(communities []community.Community, path string) error
}

// FileWriter implements OutputWriter for file-based output
type FileWriter struct {
	Precision int
}

// NewFileWriter creates a new file-based output writer
func NewFileWriter(precision int) OutputWriter {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return &FileWriter{Precision: precision}
}

// WriteReport writes the statistics header and per-community lines to path
func (fw *FileWriter) WriteReport(result *Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer file.Close()

	if err := WriteReport(file, result, fw.Precision); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return file.Close()
}

// WriteMembership writes the sorted members of every community to path
func (fw *FileWriter) WriteMembership(communities []community.Community, path string) error {
	return community.WriteMembershipFile(path, communities)
}

// WriteReport formats a result:
//
//	Mean: <float>
//	Maximum: <float>
//	Minimum: <float>
//	Stddev: <float>
//	CV: <float>
//
//	<size>\t<phi>
func WriteReport(w io.Writer, result *Result, precision int) error {
	format := func(v float64) string {
		return strconv.FormatFloat(v, 'g', precision, 64)
	}

	bw := bufio.NewWriter(w)
	s := result.Summary

	fmt.Fprintf(bw, "Mean: %s\n", format(s.Mean))
	fmt.Fprintf(bw, "Maximum: %s\n", format(s.Max))
	fmt.Fprintf(bw, "Minimum: %s\n", format(s.Min))
	fmt.Fprintf(bw, "Stddev: %s\n", format(s.StdDev))
	fmt.Fprintf(bw, "CV: %s\n\n", format(s.CV))

	for _, r := range result.Records {
		fmt.Fprintf(bw, "%d\t%s\n", r.Size, format(r.Phi))
	}

	return bw.Flush()
}
