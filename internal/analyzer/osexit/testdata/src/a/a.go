package main

import (
	"fmt"
	"os"
	exit "os"
)

func main() {
	fmt.Println("start")
	defer func() {
		os.Exit(2)
	}()
	if len(os.Args) > 3 {
		exit.Exit(3) // want "direct call to os.Exit in main function of main package"
	}
	os.Exit(1) // want "direct call to os.Exit in main function of main package"
}

func helper() {
	os.Exit(4)
}
