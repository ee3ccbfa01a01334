package main

import "github.com/llehouerou/go-fdkaac/cmd/fdkaac/cmd"

func main() {
	cmd.Execute()
}
