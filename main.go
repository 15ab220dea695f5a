package main

import (
	"chessview/src/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunChessView(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
