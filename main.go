package main

import "country-db/cmd"

func main() {
	cmd.Execute()
}
