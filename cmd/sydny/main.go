package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	"sydny/internal/assistant"
	"sydny/internal/audio"
	"sydny/internal/bus"
	"sydny/internal/ipc"
	"sydny/internal/notify"
	"sydny/internal/stt"
	"sydny/internal/sysctl"
	"sydny/internal/task"
	"sydny/internal/tts"
	"sydny/internal/ui"
	"sydny/pkg/audioconv"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	logLevel := cli.StringP("log", "l", "info", "Log level")
	announce := cli.BoolP("announce", "a", true, "Announce-only mode: describe OS actions instead of running them")
	noUI := cli.Bool("no-ui", false, "Run headless, without the terminal eye")
	busURL := cli.StringP("bus", "b", "", "Websocket hub URL to mirror UI events to")
	modelPath := cli.StringP("model", "m", "", "Whisper model path")
	taskFile := cli.StringP("tasks", "t", "", "Task store path")
	audioFile := cli.String("audio-file", "", "Replay a recorded audio file instead of the microphone")
	cueFile := cli.String("cue", "beep.mp3", "Listening cue sound")
	socket := cli.String("socket", ipc.SocketPath, "Control socket path")
	cli.Parse()

	log.SetDefault(log.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	log.Info("Booting up")

	godotenv.Load(*envFile)

	model := firstOf(*modelPath, os.Getenv("SYDNY_MODEL"), "models/ggml-base.en.bin")
	tasks := firstOf(*taskFile, os.Getenv("SYDNY_TASK_FILE"), "sydny_tasks.json")
	hub := firstOf(*busURL, os.Getenv("BUS_URL"), "")

	store, err := task.Open(tasks)
	if err != nil {
		log.Error("Failed to open task store", "path", tasks, "err", err)
		os.Exit(1)
	}

	log.Debug("Loaded task store", "path", tasks, "tasks", store.Count(true))

	engine, err := stt.NewWhisper(model, "en")
	if err != nil {
		log.Error("Failed to init whisper", "model", model, "err", err)
		os.Exit(1)
	}
	defer engine.Close()

	log.Debug("Loaded whisper", "model", model)

	var mirror *bus.Bus
	if hub != "" {
		mirror, err = bus.Dial(hub)
		if err != nil {
			log.Error("Failed to connect to event hub", "url", hub, "err", err)
			os.Exit(1)
		}
		defer mirror.Close()
	}

	system := sysctl.New(sysctl.Config{AnnounceOnly: *announce})
	if *announce {
		log.Warn("Announce-only mode: OS actions will be described, not executed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	utterances := make(chan string)

	if *audioFile != "" {
		go replayFile(*audioFile, engine, utterances)
	} else {
		rec := audio.NewRecorder()
		if err := rec.Init(); err != nil {
			log.Error("Failed to init audio", "err", err)
			os.Exit(1)
		}
		defer rec.Close()
		if err := rec.Open(); err != nil {
			log.Error("Failed to open microphone", "err", err)
			os.Exit(1)
		}

		log.Debug("Loaded recorder")

		captureDone := make(chan struct{})
		go func() {
			defer close(captureDone)
			captureLoop(ctx, rec, engine, *cueFile, utterances)
		}()
		// the recorder must not be torn down under the capture goroutine:
		// cancel first, wait for it to drop out of ReadChunk, then Close
		defer func() {
			stop()
			<-captureDone
		}()
	}

	log.Info("Boot up - successful")

	if *noUI {
		runHeadless(ctx, system, store, mirror, utterances, *socket)
		return
	}
	runWithUI(ctx, stop, system, store, mirror, utterances, *socket)
}

func firstOf(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// chunkReader is the capture surface captureLoop drains; satisfied by
// *audio.Recorder.
type chunkReader interface {
	ReadChunk() ([]float32, error)
}

// captureLoop reads microphone chunks and forwards complete phrases. It
// returns once ctx is cancelled, at the latest after the read in flight
// delivers its chunk.
func captureLoop(ctx context.Context, rec chunkReader, engine stt.Engine, cue string, out chan<- string) {
	notify.Beep(cue)
	log.Info("Listening")

	for {
		if ctx.Err() != nil {
			return
		}

		chunk, err := rec.ReadChunk()
		if err != nil {
			log.Error("Failed to read audio chunk", "err", err)
			continue
		}

		text, ok := engine.Accept(chunk)
		if !ok || text == "" {
			continue
		}

		log.Info("Recognized", "text", text)
		select {
		case out <- text:
		case <-ctx.Done():
			return
		}
	}
}

// replayFile pushes a recorded file through the same recognition path,
// then closes the channel so the assistant winds down.
func replayFile(path string, engine stt.Engine, out chan<- string) {
	defer close(out)

	pcm, err := audioconv.DecodeFile(path)
	if err != nil {
		log.Error("Failed to decode audio file", "path", path, "err", err)
		return
	}

	log.Info("Replaying audio file", "path", path, "samples", len(pcm))

	for i := 0; i < len(pcm); i += audio.ChunkSize {
		end := i + audio.ChunkSize
		if end > len(pcm) {
			end = len(pcm)
		}
		if text, ok := engine.Accept(pcm[i:end]); ok && text != "" {
			log.Info("Recognized", "text", text)
			out <- text
		}
	}

	// trailing silence so a phrase at the end of the file still cuts
	silence := make([]float32, audio.ChunkSize)
	for i := 0; i < 50; i++ {
		if text, ok := engine.Accept(silence); ok && text != "" {
			log.Info("Recognized", "text", text)
			out <- text
		}
	}
}

func startControlSocket(socket string, asst *assistant.Assistant, utterances chan<- string) {
	err := ipc.StartServer(socket, func(msg ipc.ControlMessage) {
		switch msg.Cmd {
		case "confirm":
			asst.Decide(true)
		case "cancel":
			asst.Decide(false)
		case "say":
			utterances <- msg.Arg
		case "exit":
			utterances <- "exit"
		default:
			log.Warn("Unknown control command", "cmd", msg.Cmd)
		}
	})
	if err != nil {
		log.Error("Failed to start control socket", "path", socket, "err", err)
		os.Exit(1)
	}
	log.Debug("Control socket ready", "path", socket)
}

func runHeadless(ctx context.Context, system *sysctl.Controller, store *task.Store, mirror *bus.Bus, utterances chan string, socket string) {
	asst := assistant.New(assistant.Config{
		Speaker: tts.Voice{},
		System:  system,
		Tasks:   store,
		Emit: func(msg any) {
			if mirror != nil {
				mirror.Emit(msg)
			}
			if t, ok := msg.(ui.TranscriptMsg); ok {
				log.Info(string(t))
			}
		},
	})

	startControlSocket(socket, asst, utterances)
	asst.Run(ctx, utterances)
}

func runWithUI(ctx context.Context, stop context.CancelFunc, system *sysctl.Controller, store *task.Store, mirror *bus.Bus, utterances chan string, socket string) {
	var asst *assistant.Assistant

	program := tea.NewProgram(
		ui.New(func(confirmed bool) {
			if asst != nil {
				asst.Decide(confirmed)
			}
		}),
		tea.WithAltScreen(),
	)

	asst = assistant.New(assistant.Config{
		Speaker: tts.Voice{},
		System:  system,
		Tasks:   store,
		Emit: func(msg any) {
			program.Send(msg)
			if mirror != nil {
				mirror.Emit(msg)
			}
		},
	})

	startControlSocket(socket, asst, utterances)

	done := make(chan struct{})
	go func() {
		asst.Run(ctx, utterances)
		close(done)
	}()

	if _, err := program.Run(); err != nil {
		log.Error("UI failed", "err", err)
	}

	// quitting the UI also winds the assistant down
	stop()
	<-done
}
