package intent

import "strings"

type Intent int

const (
	Unknown Intent = iota
	Open
	Close
	OpenFile
	Search
	Delete
	Volume
	Mute
	Unmute
	Shutdown
	Restart
	Sleep
	Exit
	TaskAdd
	TaskList
	TaskComplete
	TaskDelete
)

var intentNames = map[Intent]string{
	Unknown:      "unknown",
	Open:         "open",
	Close:        "close",
	OpenFile:     "openfile",
	Search:       "search",
	Delete:       "delete",
	Volume:       "volume",
	Mute:         "mute",
	Unmute:       "unmute",
	Shutdown:     "shutdown",
	Restart:      "restart",
	Sleep:        "sleep",
	Exit:         "exit",
	TaskAdd:      "task_add",
	TaskList:     "task_list",
	TaskComplete: "task_complete",
	TaskDelete:   "task_delete",
}

func (i Intent) String() string {
	if s, ok := intentNames[i]; ok {
		return s
	}
	return "unknown"
}

// Destructive reports whether the intent has to pass the confirmation
// gate before it is executed.
func (i Intent) Destructive() bool {
	switch i {
	case Shutdown, Restart, Sleep, Delete, TaskDelete:
		return true
	}
	return false
}

// Command is the matcher's result: an intent plus an optional free-text
// target (app name, filename fragment, volume digits, task description).
type Command struct {
	Intent Intent
	Target string
}

var fillers = map[string]struct{}{
	"please": {}, "could": {}, "you": {}, "can": {}, "would": {}, "will": {},
	"up": {}, "the": {}, "a": {}, "an": {}, "for": {}, "me": {}, "my": {},
}

// StripFillers lowercases the utterance, splits it on whitespace and drops
// every filler word. Order and duplicates of the remaining tokens are
// preserved.
func StripFillers(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		if _, ok := fillers[w]; ok {
			continue
		}
		words = append(words, w)
	}
	return words
}

// Parse maps an utterance to a Command. The rules form a priority cascade:
// categories overlap on shared words ("file" belongs to openfile, search
// and delete alike), so order matters. A rule whose target comes out empty
// is treated as not-this-intent and falls through.
func Parse(text string) Command {
	words := StripFillers(text)

	if contains(words, "task") || contains(words, "tasks") {
		if cmd, ok := parseTask(words); ok {
			return cmd
		}
	}

	if contains(words, "file") && contains(words, "open") {
		rest := removeAll(words, "open", "file")
		if len(rest) > 0 {
			return Command{OpenFile, strings.Join(rest, " ")}
		}
		// the removal sticks: "open file" alone must not reach the plain
		// open rule and launch an app called "file"
		words = rest
	}

	if contains(words, "open") {
		if rest := removeFirst(words, "open"); len(rest) > 0 {
			return Command{Open, strings.Join(rest, " ")}
		}
	}

	if contains(words, "close") {
		if rest := removeFirst(words, "close"); len(rest) > 0 {
			return Command{Close, strings.Join(rest, " ")}
		}
	}

	if contains(words, "search") || contains(words, "find") {
		if rest := removeAll(words, "search", "find", "file"); len(rest) > 0 {
			return Command{Search, strings.Join(rest, " ")}
		}
	}

	if contains(words, "delete") {
		if rest := removeAll(words, "delete", "file"); len(rest) > 0 {
			return Command{Delete, strings.Join(rest, " ")}
		}
	}

	if contains(words, "volume") {
		rest := removeFirst(words, "volume")
		return Command{Volume, firstDigits(rest)}
	}

	if contains(words, "mute") {
		return Command{Intent: Mute}
	}
	if contains(words, "unmute") {
		return Command{Intent: Unmute}
	}
	if contains(words, "shutdown") || contains(words, "shut") {
		return Command{Intent: Shutdown}
	}
	if contains(words, "restart") {
		return Command{Intent: Restart}
	}
	if contains(words, "sleep") {
		return Command{Intent: Sleep}
	}
	if contains(words, "exit") || contains(words, "quit") {
		return Command{Intent: Exit}
	}

	return Command{Intent: Unknown}
}

// parseTask handles utterances mentioning tasks. Checked before the main
// cascade so that "delete task two" never reaches the file-delete rule.
func parseTask(words []string) (Command, bool) {
	switch {
	case contains(words, "add"), contains(words, "new"):
		rest := removeAll(words, "add", "new", "task", "tasks")
		if len(rest) > 0 {
			return Command{TaskAdd, strings.Join(rest, " ")}, true
		}
	case contains(words, "list"), contains(words, "show"), contains(words, "what"):
		return Command{Intent: TaskList}, true
	case contains(words, "complete"), contains(words, "done"), contains(words, "finish"):
		return Command{TaskComplete, firstDigits(words)}, true
	case contains(words, "delete"), contains(words, "remove"):
		// consumed even without a number: "delete task" must end in a
		// task-number reprompt, never in the file-delete rule
		return Command{TaskDelete, firstDigits(words)}, true
	}
	return Command{}, false
}

// ParseAnswer classifies an utterance as a yes/no confirmation answer.
// The second return is false when the utterance is neither.
func ParseAnswer(text string) (answer, ok bool) {
	words := StripFillers(text)
	for _, w := range words {
		switch w {
		case "yes", "yeah", "confirm":
			return true, true
		case "no", "cancel", "nope":
			return false, true
		}
	}
	return false, false
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}

func removeFirst(words []string, w string) []string {
	out := make([]string, 0, len(words))
	removed := false
	for _, x := range words {
		if !removed && x == w {
			removed = true
			continue
		}
		out = append(out, x)
	}
	return out
}

func removeAll(words []string, drop ...string) []string {
	set := make(map[string]struct{}, len(drop))
	for _, d := range drop {
		set[d] = struct{}{}
	}
	out := make([]string, 0, len(words))
	for _, x := range words {
		if _, ok := set[x]; ok {
			continue
		}
		out = append(out, x)
	}
	return out
}

func firstDigits(words []string) string {
	for _, w := range words {
		if w != "" && allDigits(w) {
			return w
		}
	}
	return ""
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
