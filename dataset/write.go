package dataset

import (
	"bufio"
	"io"
	"strconv"
)

// WriteVectors writes one vector per line with space-separated values in
// the shortest representation that reads back exactly.
func WriteVectors(w io.Writer, vectors [][]float64) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, vec := range vectors {
		buf = buf[:0]
		for i, v := range vec {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteLabels writes one label per line.
func WriteLabels(w io.Writer, labels []int) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, l := range labels {
		buf = strconv.AppendInt(buf[:0], int64(l), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
