package main

import (
	"github.com/alonana/httfields/app"
	"github.com/alonana/httfields/core"
)

func main() {
	core.ParseFlags()

	entryPoint := app.EntryPoint{}
	err := entryPoint.Run()
	if err != nil {
		core.Fatal("run failed: %v", err)
	}
}
