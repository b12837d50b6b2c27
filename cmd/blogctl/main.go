package main

import "github.com/rpupo63/personal-blog/cli"

func main() {
	cli.Execute()
}
