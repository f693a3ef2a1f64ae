package main

import "hbasekit/rsregions/cmd"

func main() {
	cmd.Execute()
}
