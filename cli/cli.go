package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/Aasim-A/btreemap/btree"
	"github.com/Aasim-A/btreemap/loader"
	"github.com/fatih/color"
	"github.com/spf13/afero"
)

type Cli struct {
	scanner *bufio.Scanner
	out     io.Writer
	tree    *btree.BTree[string, string]
	fs      afero.Fs

	found *color.Color
	fail  *color.Color
	info  *color.Color
}

func NewCli(s *bufio.Scanner, out io.Writer, t *btree.BTree[string, string], fs afero.Fs) *Cli {
	return &Cli{
		scanner: s,
		out:     out,
		tree:    t,
		fs:      fs,
		found:   color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		info:    color.New(color.FgCyan),
	}
}

// Start reads commands until EXIT or the end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprint(c.out, `
B-Tree Map CLI

Available Commands:
  SET <key> <val> Insert a key-value pair, replacing the value of an existing key
  GET <key>       Retrieve the value for key
  LOAD <file>     Insert every "key value" line of a file
  PRINT           Print the keys of the tree level by level
  STATS           Print the number of keys, height and degree
  HELP            Print this message
  EXIT            Terminate this session
`)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// Returns false when the session should end.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		c.fail.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "set":
		c.processSetCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "load":
		c.processLoadCommand(fields[1:])
	case "print":
		c.processPrintCommand()
	case "stats":
		c.processStatsCommand()
	case "help":
		c.printHelp()
	case "exit":
		return false
	}

	return true
}

func (c *Cli) processSetCommand(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "Usage: SET <key> <value>")
		return
	}
	c.tree.Insert(args[0], strings.Join(args[1:], " "))
	c.found.Fprintln(c.out, "OK")
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: GET <key>")
		return
	}
	val, ok := c.tree.Search(args[0])

	if !ok {
		c.fail.Fprintln(c.out, "Key not found.")
		return
	}
	c.found.Fprintln(c.out, val)
}

func (c *Cli) processLoadCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: LOAD <file>")
		return
	}
	count, err := loader.LoadFile(c.fs, args[0], c.tree)
	if err != nil {
		c.fail.Fprintf(c.out, "Loaded %d records before error: %v\n", count, err)
		return
	}
	c.found.Fprintf(c.out, "Loaded %d records.\n", count)
}

func (c *Cli) processPrintCommand() {
	var buf bytes.Buffer
	c.tree.Print(&buf)
	c.info.Fprint(c.out, buf.String())
}

func (c *Cli) processStatsCommand() {
	c.info.Fprintf(c.out, "keys=%d height=%d degree=%d\n", c.tree.Len(), c.tree.Height(), c.tree.Degree())
}
