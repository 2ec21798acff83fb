package main

import "github.com/mimicry/mimicry/cmd/mimicry"

func main() { mimicry.Execute() }
