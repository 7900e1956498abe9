package contracts

type GridSerializer interface {
	Marshal(grid Grid) ([]byte, error)
	Unmarshal(data []byte) (Grid, error)
}
