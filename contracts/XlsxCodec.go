package contracts

import "io"

type XlsxCodec interface {
	Export(grid Grid) ([]byte, error)
	Import(reader io.Reader) (Grid, error)
}
