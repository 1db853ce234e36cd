// Package b exercises file-scope declaration ordering.
package b

//sorted:check

const version = "1.0"

type Widget struct {
	name string
}

func Run() string { return version }

func (w Widget) Name() string { return w.name }

var registry = map[string]Widget{}
