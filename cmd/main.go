package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"go.lisc.dev/pkg"
)

func main() {
	data, err := os.ReadFile("./examples/main.lp")
	if err != nil {
		panic(errors.Wrap(err, "read source"))
	}

	out, err := lisc.NewCompiler().Compile(string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(out)
}
