package live

import "time"

// Reduce applies an event to the UI state.
func Reduce(state State, event Event, now time.Time) State {
	switch event.Kind {
	case EventRunStart:
		state.Function = event.Function
		state.Reference = event.Reference
		state.NumSamples = event.NumSamples
		state.NumSequences = event.NumSequences
		state.CorpusPath = event.CorpusPath
		state.StartedAt = now
		state.History = nil
		state.Done = false
	case EventCheckpoint:
		state.Latest = event.Checkpoint
		state.History = append(state.History, event.Checkpoint)
		if len(state.History) > historyLimit {
			state.History = state.History[len(state.History)-historyLimit:]
		}
	case EventRunEnd:
		state.Done = true
	}
	return state
}
