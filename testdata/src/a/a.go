package a

//sorted:check
const (
	Apple = iota
	Banana
	//sorted:ignore
	Mango
	Cherry
)

//sorted:check
const (
	East = iota
	South
	North // want `North should sort before South`
	West
)

const (
	Unchecked = iota
	Whatever
)

//sorted:check
type Config struct {
	Host string
	Port int
	//gosorted:ignore
	legacy  bool
	Timeout int
}

//sorted:check
type Rect struct {
	Width  int
	Height int // want `Height should sort before Width`
}

type unmarked struct {
	b int
	a int
}
