package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/mesh-slice/meshslice"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: mesh_info [flags] <input.stl|mesh>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading mesh...")
	mesh, err := meshslice.LoadFile(inputPath)
	essentials.Must(err)

	if err := mesh.Validate(); err != nil {
		fmt.Println("Invalid mesh:", err)
	}
	fmt.Println(mesh.Stats())
}
