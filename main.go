package main

import "blob-loader/cmd"

func main() {
	cmd.Execute()
}
