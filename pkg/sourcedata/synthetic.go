package sourcedata

import (
	"fmt"
	"math"
	"math/rand"
)

// SyntheticConfig mirrors the Python CLI demo's --n-points/--n-images/
// --n-cols/--depth-based flags (original_source/dlis_writer/writer/
// synthetic_data_generator.py), used to build a fake InMemory well log for
// cmd/dliswriter's demo path.
type SyntheticConfig struct {
	NPoints    int
	NImages    int
	NCols      int
	DepthBased bool
}

// GenerateSynthetic builds an InMemory adapter with an index column
// ("time" or "depth"), two scalar channels ("rpm", "col3"), and NImages
// 2D image channels ("image0", "image1", ...), matching the shape the
// Python generator's make_image/_fill_in_data produce.
func GenerateSynthetic(c SyntheticConfig) (*InMemory, error) {
	if c.NPoints <= 0 {
		return nil, fmt.Errorf("sourcedata: synthetic generator requires n_points > 0, got %d", c.NPoints)
	}
	if c.NCols <= 0 {
		c.NCols = 128
	}

	names := []string{indexName(c.DepthBased), "rpm", "col3"}
	columns := map[string][][]interface{}{}

	index := make([][]interface{}, c.NPoints)
	for i := 0; i < c.NPoints; i++ {
		var v float64
		if c.DepthBased {
			v = 2500 + 0.1*float64(i)
		} else {
			v = 0.5 * float64(i)
		}
		index[i] = []interface{}{v}
	}
	columns[names[0]] = index

	rpm := make([][]interface{}, c.NPoints)
	for i := 0; i < c.NPoints; i++ {
		rpm[i] = []interface{}{10 * math.Sin(float64(i) * 1e4 * math.Pi / float64(c.NPoints))}
	}
	columns["rpm"] = rpm

	col3 := make([][]interface{}, c.NPoints)
	for i := 0; i < c.NPoints; i++ {
		col3[i] = []interface{}{float64(i)}
	}
	columns["col3"] = col3

	for img := 0; img < c.NImages; img++ {
		name := fmt.Sprintf("image%d", img)
		names = append(names, name)
		divider := 10 + int(float64(c.NCols-11)*rand.Float64())
		if divider < 1 {
			divider = 1
		}
		rows := make([][]interface{}, c.NPoints)
		for i := 0; i < c.NPoints; i++ {
			row := make([]interface{}, c.NCols)
			for j := 0; j < c.NCols; j++ {
				base := float64((i*c.NCols+j)%divider) + 5*rand.Float64()
				row[j] = base
			}
			rows[i] = row
		}
		columns[name] = rows
	}

	return NewInMemory(names, columns)
}

func indexName(depthBased bool) string {
	if depthBased {
		return "depth"
	}
	return "time"
}
