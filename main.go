package main

import (
	"log"

	"github.com/iburimskiy/shape-field/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
