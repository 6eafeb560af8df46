package main

import "github.com/ozzzik/KetoMacroTracker-sub000/cmd/ketomacro"

func main() {
	ketomacro.Execute()
}
