package main

import "github.com/oshokin/msix-store-tool/cmd/msix-store-tool/cmd"

func main() {
	cmd.Execute()
}
