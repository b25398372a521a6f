package main

import "github.com/postboard/placeholder_sdk_go/cmd/placeholderctl/cli"

func main() {
	cli.Execute()
}
