package main

import (
	"fmt"
	"os"

	colorpicker "github.com/junegunn/colorpicker/src"
	"github.com/junegunn/colorpicker/src/protector"
	"github.com/junegunn/colorpicker/src/util"
)

var version = "0.1.0"

func exit(code int, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	util.Exit(code)
}

func main() {
	protector.Protect()
	options, err := colorpicker.ParseOptions(true, os.Args[1:])
	if err != nil {
		exit(colorpicker.ExitError, err)
		return
	}
	code, err := colorpicker.Run(options, version)
	exit(code, err)
}
