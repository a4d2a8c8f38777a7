package main

import (
	"fmt"

	"github.com/kobun-yomi/refmap/remap"
)

// rulesCommand prints the rule table, or the rules of one legacy id
func rulesCommand(name string, ui UI) error {
	ids := remap.LegacyIds()

	if name != "" {
		id, ok := remap.ParseLegacyId(name)
		if !ok {
			return fmt.Errorf("unknown legacy id: %s", name)
		}
		ids = []remap.LegacyId{id}
	}

	for _, id := range ids {
		fmt.Fprintf(ui.Out, "📖 %s\n", id)
		for _, r := range remap.Rules(id) {
			fmt.Fprintf(ui.Out, "  %s  => %s\n", r.Condition(), r.Target)
		}
	}

	return nil
}
