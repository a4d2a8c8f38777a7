package main

import (
	"github.com/kobun-yomi/refmap/explain"
)

func explainCommand(ui UI) error {
	hdl := explain.NewHandler(ui.Out)
	return hdl.Run()
}
