// Command tensorinfo prints layout properties of dense array descriptions.
//
// Usage:
//
//	tensorinfo [flags] [shape-spec ...]
//
// A shape-spec is a list of extents joined by 'x', e.g. 2x3x4. The empty
// spec "scalar" describes a zero-dimensional array.
//
// Examples:
//
//	tensorinfo 2x3x4
//	tensorinfo -dtype int64 1024 64x64
//	tensorinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-tensor/tensor/dense"
)

var dtypes = map[string]dense.DType{
	"object":  dense.DTObject,
	"int64":   dense.DTInt64,
	"float64": dense.DTFloat64,
}

func main() {
	dtypeName := flag.String("dtype", "float64", "element type (object, int64, float64)")
	list := flag.Bool("list", false, "list available element types")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tensorinfo [flags] [shape-spec ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints rank, element count, row-major strides and byte sizes\n")
		fmt.Fprintf(os.Stderr, "for dense array shape descriptions like 2x3x4.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tensorinfo 2x3x4\n")
		fmt.Fprintf(os.Stderr, "  tensorinfo -dtype int64 1024 64x64\n")
		fmt.Fprintf(os.Stderr, "  tensorinfo -list\n")
	}
	flag.Parse()

	if *list {
		for name := range dtypes {
			fmt.Println(name)
		}
		return
	}

	dt, ok := dtypes[*dtypeName]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown dtype %q\n", *dtypeName)
		os.Exit(1)
	}

	specs := flag.Args()
	if len(specs) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHAPE\tDTYPE\tRANK\tELEMS\tSTRIDES\tBYTES")
	for _, spec := range specs {
		shape, err := parseShape(spec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		printInfo(w, spec, shape, dt)
	}
	w.Flush()
}

// parseShape turns "2x3x4" into Shape{2, 3, 4}. "scalar" is the rank-0
// shape.
func parseShape(spec string) (dense.Shape, error) {
	if spec == "scalar" {
		return nil, nil
	}
	parts := strings.Split(strings.ToLower(spec), "x")
	shape := make(dense.Shape, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid shape spec %q", spec)
		}
		shape = append(shape, n)
	}
	return shape, nil
}

func printInfo(w *tabwriter.Writer, spec string, shape dense.Shape, dt dense.DType) {
	strides := shape.Strides()
	stridesCol := "-"
	if len(strides) > 0 {
		strs := make([]string, len(strides))
		for i, s := range strides {
			strs[i] = strconv.Itoa(s)
		}
		stridesCol = strings.Join(strs, ",")
	}
	fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%d\n",
		spec, dt, shape.Rank(), shape.Elems(), stridesCol, shape.Elems()*dt.Size())
}
