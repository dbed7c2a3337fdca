package main

import "github.com/easyearn/admin-console/cmd"

func main() {
	cmd.Execute()
}
