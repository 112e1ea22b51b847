package main

import "Go-Receitas-API/cmd/cli"

func main() {
	cli.Execute()
}
