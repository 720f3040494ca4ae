// cmd/cbeast-matrix/main.go
package main

import (
	"github.com/acorg/christian-beast/internal/appshell"
	"github.com/acorg/christian-beast/internal/matrixapp"
)

func main() {
	appshell.Main(matrixapp.RunContext)
}
