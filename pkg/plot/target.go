package plot

import (
	"strings"
	"sync"

	"github.com/matzehuels/showviz/pkg/errors"
)

// Display targets accepted by SetTarget.
const (
	TargetAuto    = "auto"
	TargetGUI     = "gui"
	TargetBrowser = "browser"
	TargetNone    = "none"
)

// Targets lists the valid display targets.
var Targets = []string{TargetAuto, TargetGUI, TargetBrowser, TargetNone}

var (
	targetMu  sync.RWMutex
	target    = TargetAuto
	override  Displayer
	browser   Displayer
	launcher  Displayer = NewLauncher(nil)
	discarder Displayer = Discard{}
)

// ValidTarget reports whether name is a known display target.
func ValidTarget(name string) bool {
	for _, t := range Targets {
		if t == name {
			return true
		}
	}
	return false
}

// SetTarget selects where Show sends plots for the whole process.
// It also clears any displayer installed with SetDisplayer.
func SetTarget(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if !ValidTarget(name) {
		return errors.New(errors.ErrCodeInvalidTarget,
			"unknown display target %q (valid: %s)", name, strings.Join(Targets, ", "))
	}
	targetMu.Lock()
	defer targetMu.Unlock()
	target = name
	override = nil
	return nil
}

// Target returns the current display target name.
func Target() string {
	targetMu.RLock()
	defer targetMu.RUnlock()
	return target
}

// SetDisplayer installs d as the process-wide displayer, taking precedence
// over the target. A nil d removes the override.
func SetDisplayer(d Displayer) {
	targetMu.Lock()
	defer targetMu.Unlock()
	override = d
}

// SetLauncher replaces the displayer used by the "auto" and "gui" targets.
func SetLauncher(d Displayer) {
	targetMu.Lock()
	defer targetMu.Unlock()
	if d != nil {
		launcher = d
	}
}

// RegisterBrowser registers the displayer used by the "browser" target.
func RegisterBrowser(d Displayer) {
	targetMu.Lock()
	defer targetMu.Unlock()
	browser = d
}

// CurrentDisplayer resolves the displayer Show uses right now.
func CurrentDisplayer() (Displayer, error) {
	targetMu.RLock()
	defer targetMu.RUnlock()

	if override != nil {
		return override, nil
	}
	switch target {
	case TargetNone:
		return discarder, nil
	case TargetBrowser:
		if browser == nil {
			return nil, errors.New(errors.ErrCodeInvalidTarget,
				"display target %q has no registered viewer; start one with `showviz serve`", TargetBrowser)
		}
		return browser, nil
	default:
		return launcher, nil
	}
}

// resetTarget restores the defaults. Tests only.
func resetTarget() {
	targetMu.Lock()
	defer targetMu.Unlock()
	target = TargetAuto
	override = nil
	browser = nil
	launcher = NewLauncher(nil)
}
