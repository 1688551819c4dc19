// Command dictate is a push-to-talk dictation daemon. Hold the hotkey,
// speak, release: the transcription lands in whatever control had focus
// when you started talking.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-audio/wav"

	"github.com/soliblue/dictate/internal/audio"
	"github.com/soliblue/dictate/internal/config"
	"github.com/soliblue/dictate/internal/focus"
	"github.com/soliblue/dictate/internal/hotkey"
	"github.com/soliblue/dictate/internal/inject"
	"github.com/soliblue/dictate/internal/models"
	"github.com/soliblue/dictate/internal/pipeline"
	"github.com/soliblue/dictate/internal/store"
	"github.com/soliblue/dictate/internal/transcribe"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ~/.config/dictate/config.yaml)")
	download := flag.Bool("download", false, "download the whisper model and exit")
	filePath := flag.String("file", "", "transcribe a WAV file and print the text instead of running the daemon")
	recent := flag.Int("recent", 0, "print the n most recent transcripts and exit")
	flag.Parse()

	if *download {
		if err := models.DownloadWhisper(); err != nil {
			log.Fatalf("model download: %v", err)
		}
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	if *recent > 0 {
		if err := printRecent(cfg, *recent); err != nil {
			log.Fatalf("recent transcripts: %v", err)
		}
		return
	}

	if *filePath != "" {
		if err := transcribeFile(cfg, *filePath); err != nil {
			log.Fatalf("transcribe file: %v", err)
		}
		return
	}

	runDaemon(cfg)
}

func runDaemon(cfg *config.Config) {
	printBanner(cfg)

	log.Println("Loading whisper model...")
	modelStart := time.Now()
	transcriber, err := transcribe.New(cfg)
	if err != nil {
		log.Fatalf("Failed to load whisper model: %v\n\nCheck that the model file exists at: %s\nRun 'dictate -download' to fetch it.", err, cfg.ModelPath)
	}
	defer transcriber.Close()
	log.Printf("Model loaded in %s", time.Since(modelStart).Round(time.Millisecond))

	var st *store.Store
	var persister pipeline.Persister
	if cfg.Store.Enabled {
		st, err = store.Open(cfg.Store.Path)
		if err != nil {
			log.Fatalf("Failed to open transcript store: %v", err)
		}
		defer st.Close()
		persister = st
		if n, err := st.Count(); err == nil {
			log.Printf("Transcript store ready (%d transcripts)", n)
		}
	}

	ctrl := pipeline.NewController(pipeline.Options{
		Transcriber:    transcriber,
		Tracker:        focus.NewSystemTracker(),
		Deliverer:      inject.NewInjector(cfg.Deliver.Method, cfg.Deliver.SendEnter),
		Store:          persister,
		SampleRate:     float64(cfg.Audio.SampleRate),
		ChunkSeconds:   cfg.Chunk.Seconds,
		OverlapSeconds: cfg.Chunk.OverlapSeconds,
		MinSeconds:     cfg.Chunk.MinSeconds,
		Events: pipeline.Events{
			LiveText: func(text string) {
				log.Printf("Live: %q", text)
			},
			QueueDepth: func(n int) {
				if n > 1 {
					log.Printf("Queue depth: %d", n)
				}
			},
			Delivered: func(text string) {
				log.Printf("Delivered: %q", text)
			},
			NoSpeech: func() {
				log.Println("No speech detected")
			},
			TooShort: func(d time.Duration) {
				log.Printf("Recording too short (%.1fs), skipping", d.Seconds())
			},
			Failed: func(err error) {
				log.Printf("ERROR: %v", err)
			},
		},
	})
	defer ctrl.Close()

	recorder, err := audio.NewRecorder(cfg.Audio.SampleRate, cfg.Audio.Channels, ctrl.AppendSamples)
	if err != nil {
		log.Fatalf("Failed to initialize audio recorder: %v\n\nEnsure microphone access is granted in System Settings > Privacy & Security > Microphone.", err)
	}
	defer recorder.Close()
	if err := recorder.Start(); err != nil {
		log.Fatalf("Failed to start audio capture: %v", err)
	}
	log.Println("Audio capture running")

	listener := hotkey.NewListener(cfg.Hotkey.Keys, cfg.Hotkey.Mode)
	go listener.Start()
	log.Printf("Hotkey listener ready (%s, mode: %s)", strings.Join(cfg.Hotkey.Keys, "+"), cfg.Hotkey.Mode)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	log.Println("Ready! Hold", strings.Join(cfg.Hotkey.Keys, "+"), "to dictate. Ctrl+C to quit.")

	events := listener.Events()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				log.Println("Hotkey listener stopped")
				return
			}
			switch ev.Type {
			case hotkey.EventStart:
				ctrl.StartRecording()
				log.Println("Recording...")
			case hotkey.EventStop:
				ctrl.StopRecording()
				log.Println("Stopped, transcribing...")
			}

		case sig := <-sigCh:
			log.Printf("Received %s, shutting down...", sig)
			if ctrl.IsRecording() {
				ctrl.StopRecording()
			}
			recorder.Close()
			ctrl.Close()
			if st != nil {
				st.Close()
			}
			transcriber.Close()
			log.Println("Goodbye!")
			// Exit directly to avoid gohook's C cleanup crash.
			// The OS reclaims the event hook on process exit.
			os.Exit(0)
		}
	}
}

// transcribeFile runs a one-shot transcription of a WAV file. Useful
// for checking a model without touching the microphone.
func transcribeFile(cfg *config.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	if buf.Format == nil || buf.Format.NumChannels == 0 {
		return fmt.Errorf("decoding %s: missing format", path)
	}

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	samples := make([]float32, frames)
	for i := 0; i < frames; i++ {
		var sum float32
		for c := 0; c < channels; c++ {
			sum += float32(buf.Data[i*channels+c]) / 32768.0
		}
		samples[i] = sum / float32(channels)
	}
	samples = audio.Resample(samples, float64(buf.Format.SampleRate))

	transcriber, err := transcribe.New(cfg)
	if err != nil {
		return fmt.Errorf("loading model: %w", err)
	}
	defer transcriber.Close()

	start := time.Now()
	text, err := transcriber.Transcribe(samples)
	if err != nil {
		return err
	}

	log.Printf("Transcribed %.1fs of audio in %s", float64(frames)/float64(buf.Format.SampleRate), time.Since(start).Round(time.Millisecond))
	fmt.Println(text)
	return nil
}

// printRecent lists the newest transcripts from the store.
func printRecent(cfg *config.Config, n int) error {
	if !cfg.Store.Enabled {
		return fmt.Errorf("transcript store is disabled in config")
	}
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()

	transcripts, err := st.Recent(n)
	if err != nil {
		return err
	}
	if len(transcripts) == 0 {
		fmt.Println("No transcripts yet.")
		return nil
	}
	for _, tr := range transcripts {
		fmt.Printf("[%s] %s\n", tr.CreatedAt.Format("2006-01-02 15:04:05"), tr.Text)
	}
	return nil
}

// loadConfig loads the config from the specified path, or falls back to
// the default config path, or uses built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	defaultPath := config.DefaultConfigPath()
	if _, err := os.Stat(defaultPath); err == nil {
		cfg, err := config.Load(defaultPath)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", defaultPath, err)
		}
		log.Printf("Config loaded from %s", defaultPath)
		return cfg, nil
	}

	log.Println("No config file found, using defaults")
	return config.Default(), nil
}

// printBanner displays the startup configuration summary.
func printBanner(cfg *config.Config) {
	fmt.Println("=== dictate ===")
	fmt.Printf("  Model:    %s\n", cfg.ModelPath)
	fmt.Printf("  Language: %s\n", cfg.Language)
	fmt.Printf("  Hotkey:   %s (%s mode)\n", strings.Join(cfg.Hotkey.Keys, "+"), cfg.Hotkey.Mode)
	fmt.Printf("  Audio:    %dHz, %dch\n", cfg.Audio.SampleRate, cfg.Audio.Channels)
	fmt.Printf("  Chunks:   %.1fs window, %.1fs overlap\n", cfg.Chunk.Seconds, cfg.Chunk.OverlapSeconds)
	fmt.Printf("  Deliver:  %s\n", cfg.Deliver.Method)
	fmt.Println("===============")
}
