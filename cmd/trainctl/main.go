package main

import "train-consist-service/internal/cli"

func main() {
	cli.Execute()
}
