package main

import "github.com/Pak209/HoloSync/cmd/hs/root"

func main() {
	root.Execute()
}
