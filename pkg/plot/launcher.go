package plot

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/showviz/pkg/errors"
)

// Launcher displays plots in the native rendering client.
//
// The client is started with --plot <id> and reads the spec from stdin.
// Display returns as soon as the process started; a background goroutine
// waits for it to exit.
type Launcher struct {
	Logger *log.Logger
}

// NewLauncher creates a launcher. A nil logger discards output.
func NewLauncher(logger *log.Logger) *Launcher {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Launcher{Logger: logger}
}

// Display starts the client for p.
func (l *Launcher) Display(ctx context.Context, p *Plot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ref := p.Ref()
	if ref.ClientPath == "" {
		return errors.New(errors.ErrCodeClientLaunch, "plot %s has no rendering client path", ref.ID)
	}

	// Not CommandContext: the window outlives the call that opened it.
	cmd := exec.Command(ref.ClientPath, "--plot", ref.ID)
	cmd.Stdin = bytes.NewReader(ref.Spec)

	if err := cmd.Start(); err != nil {
		return errors.Wrap(errors.ErrCodeClientLaunch, err, "start rendering client %s", ref.ClientPath)
	}
	l.Logger.Debug("launched rendering client", "pid", cmd.Process.Pid, "plot", ref.ID, "kind", ref.Kind)

	go func() {
		if err := cmd.Wait(); err != nil {
			l.Logger.Warn("rendering client exited", "plot", ref.ID, "error", err)
		}
	}()
	return nil
}

// Discard is a Displayer that drops every plot.
type Discard struct{}

// Display does nothing.
func (Discard) Display(context.Context, *Plot) error { return nil }

var (
	_ Displayer = (*Launcher)(nil)
	_ Displayer = Discard{}
	_ Displayer = DisplayerFunc(nil)
)
