package main

import "github.com/shaharia-lab/topicast/cmd"

func main() {
	cmd.Execute()
}
