package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"

	"github.com/lowpoly/psxcore/emulator"
)

func main() {
	app := &cli.App{
		Name:  "gopsx",
		Usage: "a PlayStation 1 core",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bios", Usage: "path to the BIOS image", Required: true},
			&cli.StringFlag{Name: "exe", Usage: "path to a PS-X EXE to inject at boot"},
			&cli.BoolFlag{Name: "trace", Usage: "dump the debugger's trace ring on exit"},
			&cli.BoolFlag{Name: "headless", Usage: "run the step loop without opening a window"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	bios, err := loadBios(c.String("bios"))
	if err != nil {
		return fmt.Errorf("loading bios: %w", err)
	}

	var exe *emulator.Exe
	if path := c.String("exe"); path != "" {
		exe, err = loadExe(path)
		if err != nil {
			return fmt.Errorf("loading exe: %w", err)
		}
	}

	ram := emulator.NewRAM()
	gpu := emulator.NewGPU()
	bus := emulator.NewBus(bios, ram, gpu)
	cpu := emulator.NewCPU(bus)

	debugger := emulator.NewDebugger()
	if c.Bool("trace") {
		bus.Debugger = debugger
		cpu.Debugger = debugger
	}

	frames := make(chan image.Image, 1)
	go runLoop(cpu, gpu, exe, frames)

	if c.Bool("headless") {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		<-interrupt
		dumpTrace(debugger, c.Bool("trace"))
		return nil
	}

	ebiten.SetWindowSize(emulator.VRAMWidth, emulator.VRAMHeight)
	ebiten.SetWindowTitle("gopsx")
	err = ebiten.RunGame(emulator.NewFramebufferView(frames))
	dumpTrace(debugger, c.Bool("trace"))
	return err
}

func dumpTrace(debugger *emulator.Debugger, enabled bool) {
	if !enabled {
		return
	}
	log.Printf("debugger: %s", debugger.Dump())
}

// runLoop drives the interpreter on its own goroutine, performs EXE
// injection and BIOS putchar tracing, and publishes frames for the
// renderer. No locks are needed: this goroutine is the sole owner of
// cpu/bus/gpu state.
func runLoop(cpu *emulator.CPU, gpu *emulator.GPU, exe *emulator.Exe, frames chan image.Image) {
	injected := exe == nil // nothing to inject, skip the check entirely
	frameCounter := 0

	for {
		if !injected && cpu.PC == emulator.InjectPC {
			exe.Inject(cpu)
			injected = true
		}

		tracePutchar(cpu)
		cpu.Step()

		frameCounter++
		if frameCounter >= 50000 {
			frameCounter = 0
			emulator.PublishFrame(frames, gpu.ToImage())
		}
	}
}

// tracePutchar hooks the BIOS's putchar entry points (the TTY output
// routine at 0xA0/0x3C and its B0-table alias at 0xB0/0x3D) to echo guest
// console output to stdout. Observation points only, they never alter
// control flow.
func tracePutchar(cpu *emulator.CPU) {
	switch {
	case cpu.PC == 0x000000a0 && cpu.Reg(9) == 0x3c:
		fmt.Printf("%c", cpu.Reg(4))
	case cpu.PC == 0x000000b0 && cpu.Reg(9) == 0x3d:
		fmt.Printf("%c", cpu.Reg(4))
	}
}

func loadBios(path string) (*emulator.BIOS, error) {
	log.Printf("loading bios \"%s\"", path)
	start := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	bios, err := emulator.LoadBIOS(file)
	if err != nil {
		return nil, err
	}

	log.Printf("loaded bios in %s", time.Since(start))
	return bios, nil
}

func loadExe(path string) (*emulator.Exe, error) {
	log.Printf("loading exe \"%s\"", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return emulator.LoadEXE(file)
}
