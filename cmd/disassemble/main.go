// disassemble takes a flat binary image and disassembles it to stdout
// starting at the first instruction, optionally loaded at an offset other
// than address zero.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/mhollis/go6502/disassemble"
	"github.com/mhollis/go6502/memory"
)

var (
	startPC = flag.Int("start_pc", 0x0000, "PC value to start disassembling")
	offset  = flag.Int("offset", 0x0000, "Offset into RAM to start loading data. All other RAM is zero'd out.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [-start_pc <PC> -offset <offset>] <filename>", os.Args[0])
	}
	fn := flag.Args()[0]

	bus := memory.NewRAM()
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("can't open %s: %v", fn, err)
	}

	max := 1<<16 - *offset
	if l := len(b); l > max {
		log.Printf("length %d at offset %d too long, truncating to 64k", l, *offset)
		b = b[:max]
	}
	for i, by := range b {
		bus.Write(uint16(*offset+i), by)
	}

	fmt.Printf("0x%.2X bytes at pc: %.4X\n", len(b), *startPC)
	pc := uint16(*startPC)
	cnt := 0
	// Can't base the loop on PC since it may wrap; stop once we run out of
	// loaded bytes instead.
	for cnt < len(b) {
		dis, off := disassemble.Step(pc, bus)
		pc += uint16(off)
		cnt += off
		fmt.Println(dis)
	}
}
