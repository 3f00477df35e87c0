// This file is part of Bitsim.
//
// Bitsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bitsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bitsim.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/jetsetilly/bitsim/environment"
	"github.com/jetsetilly/bitsim/gui"
	"github.com/jetsetilly/bitsim/gui/plainterm"
	"github.com/jetsetilly/bitsim/gui/tui"
	"github.com/jetsetilly/bitsim/hardware"
	"github.com/jetsetilly/bitsim/hardware/preferences"
	"github.com/jetsetilly/bitsim/hardware/tones"
	"github.com/jetsetilly/bitsim/logger"
	"github.com/jetsetilly/bitsim/modalflag"
	"github.com/jetsetilly/bitsim/notifications"
	"github.com/jetsetilly/bitsim/paths"
	"github.com/jetsetilly/bitsim/prefs"
	"github.com/jetsetilly/bitsim/script"
	"github.com/jetsetilly/bitsim/smfwriter"
	"github.com/jetsetilly/bitsim/statsview"
	"github.com/jetsetilly/bitsim/version"
	"github.com/jetsetilly/bitsim/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAIN", "SCRIPT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	// ctrl-c ends the current mode gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, func(b *hardware.Board) gui.GUI {
			return tui.NewTUI(b)
		})
	case "PLAIN":
		err = run(ctx, md, func(b *hardware.Board) gui.GUI {
			return plainterm.NewPlainTerm(b)
		})
	case "SCRIPT":
		err = runScript(ctx, md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		stop()
		os.Exit(20)
	}
}

// notifier writes every notice to the log.
type notifier struct{}

func (notifier) Notify(notice notifications.Notice) error {
	logger.Log(logger.Allow, "notice", notice)
	return nil
}

// options common to every mode that creates a board.
type options struct {
	log       *bool
	wav       *string
	midi      *string
	musicPin  *int
	prefs     *string
	statsview *bool
}

func addOptions(md *modalflag.Modes) *options {
	opts := &options{
		log:      md.AddBool("log", false, "echo debugging log to stderr"),
		wav:      md.AddString("wav", "", "record music to wav file"),
		midi:     md.AddString("midi", "", "record music to MIDI file"),
		musicPin: md.AddInt("musicpin", -1, "pin connected to the speaker (0, 1, 2 or 8)"),
		prefs:    md.AddString("prefs", "", "preferences for this session. format key::value; key::value"),
	}
	if statsview.Available() {
		opts.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return opts
}

// session is a board and the audio drivers attached to it.
type session struct {
	board *hardware.Board

	// the tone pump is stopped by cancelling the context. the waitgroup is
	// done when the mixers have finished writing
	cancel context.CancelFunc
	pump   sync.WaitGroup
}

func newSession(ctx context.Context, opts *options) (*session, error) {
	if *opts.log {
		logger.SetEcho(os.Stderr, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if opts.statsview != nil && *opts.statsview {
		statsview.Launch(ctx, os.Stdout)
	}

	prefs.PushCommandLineStack(*opts.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "bitsim", "unused preferences: %s", unused)
		}
	}()

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}
	if *opts.musicPin >= 0 {
		if err := p.MusicPin.Set(*opts.musicPin); err != nil {
			return nil, err
		}
	}

	env, err := environment.NewEnvironment(notifier{}, p)
	if err != nil {
		return nil, err
	}

	b, err := hardware.NewBoard(env)
	if err != nil {
		return nil, err
	}

	if err := b.Pins.Register(); err != nil {
		return nil, err
	}

	s := &session{board: b}

	pump := tones.NewPump(b.Tones, func() int {
		return env.Prefs.MusicPin.Get().(int)
	})

	if *opts.wav != "" {
		aw, err := wavwriter.New(*opts.wav)
		if err != nil {
			return nil, err
		}
		pump.AddMixer(aw)
	}

	if *opts.midi != "" {
		mw, err := smfwriter.New(*opts.midi)
		if err != nil {
			return nil, err
		}
		pump.AddMixer(mw)
	}

	var pumpCtx context.Context
	pumpCtx, s.cancel = context.WithCancel(context.Background())
	s.pump.Add(1)
	go func() {
		defer s.pump.Done()
		if err := pump.Run(pumpCtx, tones.DefaultCadence); err != nil {
			logger.Log(logger.Allow, "bitsim", err)
		}
	}()

	return s, nil
}

// end the session. music and animation are stopped and the audio drivers
// write their files.
func (s *session) end() {
	s.board.End()
	s.cancel()
	s.pump.Wait()
	s.board.Pins.Unregister()
}

func run(ctx context.Context, md *modalflag.Modes, frontend func(*hardware.Board) gui.GUI) error {
	md.NewMode()

	opts := addOptions(md)
	scriptFile := md.AddString("script", "", "run script in the background")
	record := md.AddBool("record", false, "record user input to a script file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := newSession(ctx, opts)
	if err != nil {
		return err
	}
	defer s.end()

	if *record {
		fn := paths.UniqueFilename("recording", "", "bitsim")
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		defer f.Close()

		rec, err := script.NewRecorder(f)
		if err != nil {
			return err
		}
		s.board.AddRecorder(rec)
		defer s.board.RemoveRecorders()
		logger.Logf(logger.Allow, "bitsim", "recording to %s", fn)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if *scriptFile != "" {
		scr, err := script.NewScript(*scriptFile, s.board)
		if err != nil {
			return err
		}
		go func() {
			if err := scr.Run(ctx); err != nil {
				logger.Log(logger.Allow, "bitsim", err)
			}
		}()
	}

	return frontend(s.board).Run(ctx)
}

func runScript(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	opts := addOptions(md)
	show := md.AddBool("show", true, "print the LED matrix when the script ends")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := newSession(ctx, opts)
	if err != nil {
		return err
	}
	defer s.end()

	scr, err := script.NewScript(md.GetArg(0), s.board)
	if err != nil {
		return err
	}

	if err := scr.Run(ctx); err != nil {
		return err
	}

	if *show {
		io.WriteString(os.Stdout, s.board.Display.Image().Lines())
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Printf("%s %s\n", version.ApplicationName, ver)
	if *revision {
		if rev == "" {
			rev = "no revision information"
		}
		fmt.Println(rev)
	}

	return nil
}
