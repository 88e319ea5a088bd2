package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/thelolagemann/gbcore/internal/boot"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
	"github.com/thelolagemann/gbcore/pkg/web"
)

// address is a flag.Value accepting decimal or 0x prefixed 16-bit addresses.
type address struct {
	value uint16
	set   bool
}

func (a *address) String() string {
	return fmt.Sprintf("0x%04X", a.value)
}

func (a *address) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return err
	}
	a.value, a.set = uint16(v), true
	return nil
}

type config struct {
	rom, state, save, trace, level string
	origin, pc, breakpoint         address
	steps                          uint64
	strict, debug                  bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.rom, "rom", "", "The program image to load (.gz, .zip, .7z, .xz and .br are decompressed)")
	flag.Var(&cfg.origin, "origin", "The address to load the program image at")
	flag.Var(&cfg.pc, "pc", "The address to start executing from")
	flag.Uint64Var(&cfg.steps, "steps", 0, "The number of instructions to execute, 0 runs until -break or -strict stops it")
	flag.Var(&cfg.breakpoint, "break", "Stop when the program counter reaches this address")
	flag.BoolVar(&cfg.strict, "strict", false, "Stop on an unknown opcode")
	flag.StringVar(&cfg.state, "state", "", "The state file to load")
	flag.StringVar(&cfg.save, "save", "", "The state file to write after running (.br is compressed)")
	flag.StringVar(&cfg.trace, "trace", "", "Serve a websocket trace of every step on this address, e.g. localhost:8090")
	flag.StringVar(&cfg.level, "log", "info", "The log level")
	flag.BoolVar(&cfg.debug, "debug", false, "Log every executed instruction")
	flag.Parse()

	logger, err := log.NewWithLevel(cfg.level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.debug {
		if logger, err = log.NewWithLevel("debug"); err != nil {
			panic(err)
		}
	}

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Fatal(err.Error())
	}
}

func run(ctx context.Context, cfg config, logger log.Logger) error {
	if cfg.rom == "" && cfg.state == "" {
		return errors.New("nothing to run, provide -rom or -state")
	}
	if cfg.steps == 0 && !cfg.breakpoint.set && !cfg.strict {
		return errors.New("no way to stop, provide -steps, -break or -strict")
	}

	opts := []cpu.Opt{cpu.WithLogger(logger)}
	if cfg.debug {
		opts = append(opts, cpu.Debug())
	}

	unknown := false
	opts = append(opts, cpu.WithTracer(func(s cpu.Snapshot) {
		unknown = s.Unknown
	}))

	if cfg.trace != "" {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		hub := web.NewHub(logger)
		go hub.Run(ctx)
		go func() {
			if err := http.ListenAndServe(cfg.trace, hub); err != nil {
				logger.Errorf("trace server: %v", err)
			}
		}()
		opts = append(opts, cpu.WithTracer(hub.Publish))
		logger.Infof("serving trace on ws://%s", cfg.trace)
	}

	c := cpu.NewCPU(opts...)

	if cfg.state != "" {
		state, err := utils.LoadFile(cfg.state)
		if err != nil {
			return err
		}
		if err := c.LoadState(state); err != nil {
			return fmt.Errorf("loading %s: %w", cfg.state, err)
		}
		logger.Infof("loaded state %s at PC 0x%04X", cfg.state, c.PC)
	}

	if cfg.rom != "" {
		data, err := utils.LoadFile(cfg.rom)
		if err != nil {
			return err
		}
		rom, err := boot.LoadROM(data)
		if err != nil {
			return fmt.Errorf("loading %s: %w", cfg.rom, err)
		}
		if err := rom.LoadInto(c, cfg.origin.value); err != nil {
			return fmt.Errorf("loading %s: %w", cfg.rom, err)
		}
		logger.Infof("loaded %s (%d bytes, %s, %016x) at 0x%04X", cfg.rom, rom.Len(), rom.Model(), rom.Fingerprint(), cfg.origin.value)
	}

	if cfg.pc.set {
		c.PC = cfg.pc.value
	}

	for i := uint64(0); cfg.steps == 0 || i < cfg.steps; i++ {
		c.Step()

		if cfg.strict && unknown {
			logger.Errorf("unknown opcode before 0x%04X", c.PC)
			break
		}
		if cfg.breakpoint.set && c.PC == cfg.breakpoint.value {
			logger.Infof("breakpoint 0x%04X reached", c.PC)
			break
		}
	}

	logger.Infof("%d steps: %s", c.Steps(), c)

	if cfg.save != "" {
		if err := utils.SaveFile(cfg.save, c.SaveState()); err != nil {
			return err
		}
		logger.Infof("saved state to %s", cfg.save)
	}
	return nil
}
