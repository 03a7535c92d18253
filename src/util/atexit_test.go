package util

import (
	"strings"
	"testing"
)

// Profiles are registered before the renderer, so the screen is restored
// before they are written
func TestAtExitRestoresRendererFirst(t *testing.T) {
	var log []string
	AtExit(func() { log = append(log, "cpu profile") })
	AtExit(func() { log = append(log, "mem profile") })
	closed := 0
	AtExit(func() {
		closed++
		log = append(log, "renderer")
	})

	RunAtExitFuncs()
	if got := strings.Join(log, ", "); got != "renderer, mem profile, cpu profile" {
		t.Errorf("unexpected order: %s", got)
	}

	// Run also by the deferred call in Run after Exit
	RunAtExitFuncs()
	if closed != 1 || len(log) != 3 {
		t.Errorf("exit funcs should run once: %v", log)
	}
}

func TestAtExitNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("nil func should panic")
		}
	}()
	AtExit(nil)
}
