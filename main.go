package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Aasim-A/btreemap/btree"
	"github.com/Aasim-A/btreemap/cli"
	"github.com/Aasim-A/btreemap/loader"
	"github.com/go-faker/faker/v4"
	"github.com/spf13/afero"
)

var degree, seedNumRecords *int
var runDemo, shouldSeed *bool
var loadPath *string

func runDemonstration(w io.Writer, degree int) error {
	tree, err := btree.NewTree[int, string](degree)
	if err != nil {
		return err
	}

	tree.Insert(10, "Ten")
	tree.Insert(20, "Twenty")
	tree.Insert(5, "Five")
	tree.Insert(6, "Six")
	tree.Insert(12, "Twelve")

	for _, key := range []int{10, 7} {
		if value, ok := tree.Search(key); ok {
			fmt.Fprintf(w, "Found: %s\n", value)
		} else {
			fmt.Fprintln(w, "Not found")
		}
	}

	return nil
}

func seedTreeWithTestRecords(tree *btree.BTree[string, string], records int) {
	for i := 0; i < records; i++ {
		tree.Insert(faker.Word()+faker.Word(), faker.Word()+faker.Word())
	}
}

func main() {
	setupFlags()

	if *runDemo {
		if err := runDemonstration(os.Stdout, *degree); err != nil {
			log.Fatal(err)
		}
		return
	}

	tree, err := btree.NewTree[string, string](*degree)
	if err != nil {
		log.Fatal(err)
	}

	if *shouldSeed {
		seedTreeWithTestRecords(tree, *seedNumRecords)
		log.Printf("Seeded %d distinct keys, tree height %d", tree.Len(), tree.Height())
	}

	fs := afero.NewOsFs()
	if *loadPath != "" {
		count, err := loader.LoadFile(fs, *loadPath, tree)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Loaded %d records from %s", count, *loadPath)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, tree, fs)
	demo.Start()
}

func setupFlags() {
	degree = flag.Int("degree", btree.MIN_DEGREE, "Minimum degree of the tree. Must be at least 2.")
	runDemo = flag.Bool("demo", false, "Insert a few integer keys, print two lookups and exit.")
	shouldSeed = flag.Bool("seed", false, "Seed the tree using records created with go-faker.")
	seedNumRecords = flag.Int("records", 1000, "Amount of records to seed the tree with upon startup.")
	loadPath = flag.String("load", "", "Insert every \"key value\" line of this file upon startup.")
	flag.Usage = func() {
		fmt.Println("\nB-Tree Map CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
