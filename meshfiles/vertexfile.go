// Package meshfiles reads and writes the boundary vertex files
// consumed by immersed-boundary solvers: a vertex count on the first
// line, then one tab-separated coordinate pair per vertex.
package meshfiles

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/naca"
	"github.com/vinodthale/Effect-of-shape-and-adaptive-kinematics/utils"
)

// WriteVertexFile writes the profile loop to path, translating every
// point by (offsetX, offsetY). The file is created or truncated and
// fully written within this call; coordinates carry 10 decimal digits.
func WriteVertexFile(p naca.Profile, path string, offsetX, offsetY float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create vertex file %s: %w", path, err)
	}

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%d\n", p.Len())
	for i := 0; i < p.Len(); i++ {
		fmt.Fprintf(w, "%.10f\t%.10f\n", p.X.AtVec(i)+offsetX, p.Y.AtVec(i)+offsetY)
	}
	if err = w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("unable to write vertex file %s: %w", path, err)
	}
	return file.Close()
}

// ReadVertexFile reads a vertex file back into coordinate vectors,
// checking the declared count against the lines actually present.
func ReadVertexFile(path string) (X, Y utils.Vector, err error) {
	file, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("unable to open vertex file %s: %w", path, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		err = fmt.Errorf("vertex file %s: missing count line", path)
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || n < 1 {
		err = fmt.Errorf("vertex file %s: bad count line %q", path, scanner.Text())
		return
	}

	var (
		xd = make([]float64, 0, n)
		yd = make([]float64, 0, n)
	)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			err = fmt.Errorf("vertex file %s: bad vertex line %q", path, scanner.Text())
			return
		}
		var x, y float64
		if x, err = strconv.ParseFloat(fields[0], 64); err != nil {
			err = fmt.Errorf("vertex file %s: bad x %q", path, fields[0])
			return
		}
		if y, err = strconv.ParseFloat(fields[1], 64); err != nil {
			err = fmt.Errorf("vertex file %s: bad y %q", path, fields[1])
			return
		}
		xd = append(xd, x)
		yd = append(yd, y)
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if len(xd) != n {
		err = fmt.Errorf("vertex file %s: header declares %d vertices, found %d", path, n, len(xd))
		return
	}
	X, Y = utils.NewVector(n, xd), utils.NewVector(n, yd)
	return
}
