package main

import "github.com/OxyzGiaHuy/ExpenseTracker/cmd"

func main() {
	cmd.Execute()
}
