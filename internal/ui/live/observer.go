package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"funcsamp/internal/estimate"
)

// Controller runs the live UI and implements estimate.Observer.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller writing to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// OnRunStart announces the run parameters to the UI.
func (c *Controller) OnRunStart(function string, reference float64, corpusPath string, numSamples, numSequences int) {
	c.send(Event{
		Kind:         EventRunStart,
		Function:     function,
		Reference:    reference,
		CorpusPath:   corpusPath,
		NumSamples:   numSamples,
		NumSequences: numSequences,
	})
}

// OnCheckpoint forwards aggregate-error updates to the UI.
func (c *Controller) OnCheckpoint(cp estimate.Checkpoint) {
	c.send(Event{Kind: EventCheckpoint, Checkpoint: cp})
}

// OnRunEnd marks the run complete.
func (c *Controller) OnRunEnd() {
	c.send(Event{Kind: EventRunEnd})
}

// Close signals the UI that no further events will arrive.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	case <-c.done:
	}
}
