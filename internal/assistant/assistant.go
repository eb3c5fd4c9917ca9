// Package assistant holds the dispatch loop: it consumes recognized
// utterances, maps them to intents, gates destructive ones behind a yes/no
// confirmation and forwards every action to the OS collaborators.
package assistant

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"

	"sydny/internal/intent"
	"sydny/internal/task"
	"sydny/internal/ui"
)

// Speaker voices a line and blocks until it has been spoken.
type Speaker interface {
	Speak(text string) error
}

// System is the OS collaborator surface the dispatcher drives.
type System interface {
	SetVolume(ctx context.Context, level int) (string, error)
	Mute(ctx context.Context) (string, error)
	Unmute(ctx context.Context) (string, error)
	Shutdown(ctx context.Context) (string, error)
	Restart(ctx context.Context) (string, error)
	Sleep(ctx context.Context) (string, error)
	OpenApp(ctx context.Context, name string) (string, error)
	CloseApp(ctx context.Context, name string) (string, error)
	SearchFile(fragment string) []string
	OpenFile(ctx context.Context, path string) (string, error)
	DeleteFile(path string) (string, error)
}

type Config struct {
	Speaker Speaker
	System  System
	Tasks   *task.Store

	// Emit forwards UI events; nil disables emission.
	Emit func(msg any)
}

type Assistant struct {
	speaker Speaker
	system  System
	tasks   *task.Store
	emit    func(msg any)
	gate    gate
}

func New(cfg Config) *Assistant {
	emit := cfg.Emit
	if emit == nil {
		emit = func(any) {}
	}
	return &Assistant{
		speaker: cfg.Speaker,
		system:  cfg.System,
		tasks:   cfg.Tasks,
		emit:    emit,
	}
}

// Decide feeds an external confirm/cancel decision (UI buttons, control
// socket) into the pending confirmation, if any.
func (a *Assistant) Decide(confirmed bool) bool {
	return a.gate.resolve(confirmed)
}

// Run consumes utterances until the channel closes, the context is
// cancelled or an Exit command arrives.
func (a *Assistant) Run(ctx context.Context, utterances <-chan string) {
	a.say("My name is Sydney, how's it going?")
	a.emit(ui.ListeningMsg(true))

	for {
		select {
		case <-ctx.Done():
			a.say("Shutting down")
			a.emit(ui.CloseMsg{})
			return
		case text, ok := <-utterances:
			if !ok {
				a.emit(ui.CloseMsg{})
				return
			}
			if text == "" {
				continue
			}

			a.emit(ui.TranscriptMsg("You: " + text))
			cmd := intent.Parse(text)
			log.Debug("Parsed utterance", "text", text, "intent", cmd.Intent.String(), "target", cmd.Target)

			if exit := a.dispatch(ctx, cmd, text, utterances); exit {
				a.emit(ui.CloseMsg{})
				return
			}
			a.emit(ui.ListeningMsg(true))
		}
	}
}

// dispatch runs one state-machine transition. Returns true on Exit.
func (a *Assistant) dispatch(ctx context.Context, cmd intent.Command, raw string, utterances <-chan string) bool {
	switch cmd.Intent {
	case intent.Exit:
		a.say("Goodbye")
		return true

	case intent.Volume:
		a.handleVolume(ctx, cmd.Target)

	case intent.Mute:
		a.run("muting audio", func() (string, error) { return a.system.Mute(ctx) })

	case intent.Unmute:
		a.run("unmuting audio", func() (string, error) { return a.system.Unmute(ctx) })

	case intent.Shutdown:
		a.confirmed(ctx, utterances, "Are you sure you want to shut down?", "Shutdown",
			func() (string, error) { return a.system.Shutdown(ctx) })

	case intent.Restart:
		a.confirmed(ctx, utterances, "Are you sure you want to restart?", "Restart",
			func() (string, error) { return a.system.Restart(ctx) })

	case intent.Sleep:
		a.confirmed(ctx, utterances, "Are you sure you want to sleep?", "Sleep",
			func() (string, error) { return a.system.Sleep(ctx) })

	case intent.Open:
		if cmd.Target == "" {
			a.say("What would you like me to open?")
			break
		}
		a.run("opening "+cmd.Target, func() (string, error) { return a.system.OpenApp(ctx, cmd.Target) })

	case intent.Close:
		if cmd.Target == "" {
			a.say("What would you like me to close?")
			break
		}
		a.run("closing "+cmd.Target, func() (string, error) { return a.system.CloseApp(ctx, cmd.Target) })

	case intent.Search:
		a.handleSearch(cmd.Target)

	case intent.Delete:
		a.handleDelete(ctx, cmd.Target, utterances)

	case intent.OpenFile:
		a.handleOpenFile(ctx, cmd.Target)

	case intent.TaskAdd:
		a.handleTaskAdd(cmd.Target)

	case intent.TaskList:
		a.handleTaskList()

	case intent.TaskComplete:
		a.handleTaskComplete(cmd.Target)

	case intent.TaskDelete:
		a.handleTaskDelete(ctx, cmd.Target, utterances)

	default:
		a.say(fmt.Sprintf("You said %s, sir", raw))
	}
	return false
}

func (a *Assistant) handleVolume(ctx context.Context, target string) {
	if target == "" {
		a.say("Please specify a volume level")
		return
	}
	level, err := strconv.Atoi(target)
	if err != nil {
		a.say("Please specify a valid number for volume")
		return
	}
	if level < 0 || level > 100 {
		a.say("Volume must be between 0 and 100")
		return
	}
	a.run("setting volume", func() (string, error) { return a.system.SetVolume(ctx, level) })
}

func (a *Assistant) handleSearch(fragment string) {
	matches := a.system.SearchFile(fragment)
	if len(matches) == 0 {
		a.say(fmt.Sprintf("No files found matching %s", fragment))
		return
	}
	a.say(fmt.Sprintf("Found %d files", len(matches)))
	for _, m := range matches {
		a.emit(ui.TranscriptMsg("  - " + m))
	}
}

func (a *Assistant) handleDelete(ctx context.Context, fragment string, utterances <-chan string) {
	matches := a.system.SearchFile(fragment)
	if len(matches) == 0 {
		a.say(fmt.Sprintf("Could not find file %s", fragment))
		return
	}
	prompt := fmt.Sprintf("Are you sure you want to delete %s?", fragment)
	a.confirmed(ctx, utterances, prompt, "Delete",
		func() (string, error) { return a.system.DeleteFile(matches[0]) })
}

func (a *Assistant) handleOpenFile(ctx context.Context, fragment string) {
	matches := a.system.SearchFile(fragment)
	if len(matches) == 0 {
		a.say(fmt.Sprintf("Could not find file %s", fragment))
		return
	}
	a.run("opening file", func() (string, error) { return a.system.OpenFile(ctx, matches[0]) })
}

func (a *Assistant) handleTaskAdd(target string) {
	priority, description := task.SplitPriority(target)
	t, err := a.tasks.Add(description, priority)
	if err != nil {
		log.Error("Failed to add task", "err", err)
		a.say("Error adding task")
		return
	}
	a.say("Added task: " + t.Description)
}

func (a *Assistant) handleTaskList() {
	tasks := a.tasks.List(false)
	if len(tasks) == 0 {
		a.say("You have no tasks")
		return
	}
	a.say(fmt.Sprintf("You have %d tasks", len(tasks)))
	for _, t := range tasks {
		a.emit(ui.TranscriptMsg("  " + t.Line()))
	}
}

func (a *Assistant) handleTaskComplete(target string) {
	id, err := strconv.Atoi(target)
	if err != nil {
		a.say("Please say a task number")
		return
	}
	t, err := a.tasks.Complete(id)
	switch {
	case errors.Is(err, task.ErrNotFound):
		a.say(fmt.Sprintf("Task %d not found", id))
	case errors.Is(err, task.ErrAlreadyDone):
		a.say(fmt.Sprintf("Task %d is already completed", id))
	case err != nil:
		log.Error("Failed to complete task", "id", id, "err", err)
		a.say("Error completing task")
	default:
		a.say("Completed task: " + t.Description)
	}
}

func (a *Assistant) handleTaskDelete(ctx context.Context, target string, utterances <-chan string) {
	id, err := strconv.Atoi(target)
	if err != nil {
		a.say("Please say a task number")
		return
	}
	prompt := fmt.Sprintf("Are you sure you want to delete task %d?", id)
	a.confirmed(ctx, utterances, prompt, "Task delete", func() (string, error) {
		t, err := a.tasks.Delete(id)
		if errors.Is(err, task.ErrNotFound) {
			return fmt.Sprintf("Task %d not found", id), nil
		}
		if err != nil {
			return "", err
		}
		return "Deleted task: " + t.Description, nil
	})
}

// run executes a collaborator call and speaks its result. A fault never
// escapes: it is logged and spoken as a generic error message.
func (a *Assistant) run(doing string, call func() (string, error)) {
	result, err := call()
	if err != nil {
		log.Error("Action failed", "action", doing, "err", err)
		a.say("Error " + doing)
		return
	}
	a.say(result)
}

// confirmed gates a destructive action behind the confirmation protocol.
func (a *Assistant) confirmed(ctx context.Context, utterances <-chan string, prompt, action string, call func() (string, error)) {
	if !a.confirm(ctx, utterances, prompt) {
		a.say(action + " cancelled")
		return
	}
	a.run("with "+strings.ToLower(action)+" command", call)
}

// confirm blocks until a yes/no answer arrives, either from a follow-up
// utterance or from the external decision channel. The first answer wins;
// there is no timeout.
func (a *Assistant) confirm(ctx context.Context, utterances <-chan string, prompt string) bool {
	a.say(prompt)
	a.emit(ui.ShowConfirmMsg(prompt))
	defer a.emit(ui.HideConfirmMsg{})

	ch := a.gate.arm()
	defer a.gate.disarm()

	for {
		select {
		case <-ctx.Done():
			return false
		case v := <-ch:
			return v
		case text, ok := <-utterances:
			if !ok {
				return false
			}
			if text == "" {
				continue
			}
			a.emit(ui.TranscriptMsg("You: " + text))
			if answer, recognized := intent.ParseAnswer(text); recognized {
				return answer
			}
			a.say("Please say yes or no")
		}
	}
}

func (a *Assistant) say(text string) {
	a.emit(ui.SpeakingMsg(true))
	a.emit(ui.TranscriptMsg("SYDNY: " + text))
	if err := a.speaker.Speak(text); err != nil {
		log.Error("Failed to speak", "err", err)
	}
	a.emit(ui.SpeakingMsg(false))
}
